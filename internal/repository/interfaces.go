package repository

import (
	"context"
	"time"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
)

// LoanRepository defines the interface for loan ledger operations
type LoanRepository interface {
	// Create creates a new loan
	Create(ctx context.Context, loan *domain.Loan) error

	// GetByLoanID retrieves a single loan owned by a user
	GetByLoanID(ctx context.Context, userID, loanID string) (*domain.Loan, error)

	// ListByUser retrieves all loans for a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error)

	// UpdateStatus moves a pending loan to a decided status; returns the
	// number of rows changed so callers can detect a no-op
	UpdateStatus(ctx context.Context, userID, loanID, status string) (bool, error)

	// ReleaseDocuments flips the documents_released flag exactly once.
	// The compare-and-set happens in the database; it returns true only
	// for the caller that performed the transition.
	ReleaseDocuments(ctx context.Context, userID, loanID string, releasedAt time.Time) (bool, error)

	// ListReleasable finds loans past their due date whose collateral
	// documents are still held
	ListReleasable(ctx context.Context, asOf time.Time) ([]*domain.Loan, error)

	// ListDueBetween finds approved loans whose due date falls inside the
	// window, for payment reminders
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error)
}

// UserRepository defines the interface for user and trust score operations
type UserRepository interface {
	// Get retrieves a user by uid
	Get(ctx context.Context, uid string) (*domain.User, error)

	// UpsertProfile merge-writes profile fields, leaving unset fields alone
	UpsertProfile(ctx context.Context, uid string, req *domain.UpdateProfileRequest) error

	// SaveFaceImages merge-writes the uploaded face image URLs
	SaveFaceImages(ctx context.Context, uid, liveURL, docURL string) error

	// RecordTrustScore writes one dimension's score and appends a history
	// entry without touching the other dimension
	RecordTrustScore(ctx context.Context, uid, dimension string, score int, entry domain.HistoryEntry) error
}

// GovRecordRepository defines the interface for authoritative identity records
type GovRecordRepository interface {
	// GetByPAN retrieves a government record by PAN number
	GetByPAN(ctx context.Context, pan string) (*domain.GovRecord, error)
}

// LenderRepository defines the interface for lender-side operations
type LenderRepository interface {
	// Register creates or updates a lender profile
	Register(ctx context.Context, profile *domain.LenderProfile) error

	// CreateOffer stores a new lending offer
	CreateOffer(ctx context.Context, offer *domain.LenderOffer) error

	// ListOffers retrieves all offers posted by a lender, newest first
	ListOffers(ctx context.Context, lenderUID string) ([]*domain.LenderOffer, error)

	// ListBorrowers retrieves users with pending loans plus their trust scores
	ListBorrowers(ctx context.Context) ([]*domain.BorrowerSummary, error)
}
