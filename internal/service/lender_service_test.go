package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/tests/mocks"
)

func TestRegisterLender(t *testing.T) {
	lenderRepo := new(mocks.MockLenderRepository)
	svc := NewLenderService(lenderRepo)

	lenderRepo.On("Register", mock.Anything, mock.AnythingOfType("*domain.LenderProfile")).Return(nil)

	profile, err := svc.Register(context.Background(), &domain.RegisterLenderRequest{
		UID:    "lender-1",
		Name:   "Priya",
		Email:  "priya@example.com",
		Wallet: "0xlender",
	})

	require.NoError(t, err)
	assert.Equal(t, "lender-1", profile.UID)
	assert.False(t, profile.RegisteredAt.IsZero())
	lenderRepo.AssertExpectations(t)
}

func TestPostOffer(t *testing.T) {
	lenderRepo := new(mocks.MockLenderRepository)
	svc := NewLenderService(lenderRepo)

	lenderRepo.On("CreateOffer", mock.Anything, mock.AnythingOfType("*domain.LenderOffer")).Return(nil)

	offer, err := svc.PostOffer(context.Background(), &domain.PostOfferRequest{
		UID:          "lender-1",
		Amount:       decimal.NewFromInt(50000),
		InterestRate: decimal.NewFromFloat(0.08),
		Wallet:       "0xlender",
	})

	require.NoError(t, err)
	assert.Equal(t, "lender-1", offer.LenderUID)
	assert.NotEqual(t, offer.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestPostOffer_RejectsNonPositiveAmount(t *testing.T) {
	lenderRepo := new(mocks.MockLenderRepository)
	svc := NewLenderService(lenderRepo)

	_, err := svc.PostOffer(context.Background(), &domain.PostOfferRequest{
		UID:    "lender-1",
		Amount: decimal.Zero,
	})

	assert.ErrorIs(t, err, customError.ErrInvalidLoanAmount)
	lenderRepo.AssertNotCalled(t, "CreateOffer")
}
