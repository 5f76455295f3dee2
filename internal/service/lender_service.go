package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// LenderService covers the lender-side surface: registration, offers and
// browsing borrowers.
type LenderService struct {
	lenderRepo repository.LenderRepository
}

func NewLenderService(lenderRepo repository.LenderRepository) *LenderService {
	return &LenderService{lenderRepo: lenderRepo}
}

// Register creates or refreshes a lender profile.
func (s *LenderService) Register(ctx context.Context, req *domain.RegisterLenderRequest) (*domain.LenderProfile, error) {
	profile := &domain.LenderProfile{
		UID:           req.UID,
		Name:          req.Name,
		Email:         req.Email,
		WalletAddress: req.Wallet,
		RegisteredAt:  time.Now().UTC(),
	}

	if err := s.lenderRepo.Register(ctx, profile); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return profile, nil
}

// PostOffer stores a new lending offer.
func (s *LenderService) PostOffer(ctx context.Context, req *domain.PostOfferRequest) (*domain.LenderOffer, error) {
	if !req.Amount.IsPositive() {
		return nil, customError.NewBusinessError(
			customError.ErrCodeInvalidLoanAmount,
			"Offer amount must be positive",
			customError.ErrInvalidLoanAmount,
		)
	}

	offer := &domain.LenderOffer{
		ID:            uuid.New(),
		LenderUID:     req.UID,
		Amount:        req.Amount,
		InterestRate:  req.InterestRate,
		WalletAddress: req.Wallet,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.lenderRepo.CreateOffer(ctx, offer); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return offer, nil
}

// ListOffers returns all offers from one lender.
func (s *LenderService) ListOffers(ctx context.Context, lenderUID string) ([]*domain.LenderOffer, error) {
	offers, err := s.lenderRepo.ListOffers(ctx, lenderUID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return offers, nil
}

// ListBorrowers returns borrowers with pending loans and their trust scores.
func (s *LenderService) ListBorrowers(ctx context.Context) ([]*domain.BorrowerSummary, error) {
	borrowers, err := s.lenderRepo.ListBorrowers(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return borrowers, nil
}
