package mocks

import (
	"context"
	"time"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByLoanID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, userID, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateStatus(ctx context.Context, userID, loanID, status string) (bool, error) {
	args := m.Called(ctx, userID, loanID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRepository) ReleaseDocuments(ctx context.Context, userID, loanID string, releasedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, loanID, releasedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRepository) ListReleasable(ctx context.Context, asOf time.Time) ([]*domain.Loan, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpsertProfile(ctx context.Context, uid string, req *domain.UpdateProfileRequest) error {
	args := m.Called(ctx, uid, req)
	return args.Error(0)
}

func (m *MockUserRepository) SaveFaceImages(ctx context.Context, uid, liveURL, docURL string) error {
	args := m.Called(ctx, uid, liveURL, docURL)
	return args.Error(0)
}

func (m *MockUserRepository) RecordTrustScore(ctx context.Context, uid, dimension string, score int, entry domain.HistoryEntry) error {
	args := m.Called(ctx, uid, dimension, score, entry)
	return args.Error(0)
}

type MockGovRecordRepository struct {
	mock.Mock
}

func (m *MockGovRecordRepository) GetByPAN(ctx context.Context, pan string) (*domain.GovRecord, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GovRecord), args.Error(1)
}

type MockLenderRepository struct {
	mock.Mock
}

func (m *MockLenderRepository) Register(ctx context.Context, profile *domain.LenderProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockLenderRepository) CreateOffer(ctx context.Context, offer *domain.LenderOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockLenderRepository) ListOffers(ctx context.Context, lenderUID string) ([]*domain.LenderOffer, error) {
	args := m.Called(ctx, lenderUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LenderOffer), args.Error(1)
}

func (m *MockLenderRepository) ListBorrowers(ctx context.Context) ([]*domain.BorrowerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BorrowerSummary), args.Error(1)
}
