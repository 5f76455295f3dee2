package repository

import (
	"context"
	"time"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"

	"github.com/jmoiron/sqlx"
)

type loanRepository struct {
	db *sqlx.DB
}

func NewLoanRepository(db *sqlx.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (id, loan_id, user_id, amount, purpose, wallet_address, status, issue_date, due_date, documents_released, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.LoanID,
		loan.UserID,
		loan.Amount,
		loan.Purpose,
		loan.WalletAddress,
		loan.Status,
		loan.IssueDate,
		loan.DueDate,
		loan.DocumentsReleased,
		loan.CreatedAt,
		loan.UpdatedAt,
	)

	return err
}

func (r *loanRepository) GetByLoanID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	query := `
		SELECT id, loan_id, user_id, amount, purpose, wallet_address, status, issue_date, due_date, documents_released, released_at, created_at, updated_at
		FROM loans
		WHERE user_id = $1 AND loan_id = $2
	`

	var loan domain.Loan
	err := r.db.GetContext(ctx, &loan, query, userID, loanID)
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error) {
	query := `
		SELECT id, loan_id, user_id, amount, purpose, wallet_address, status, issue_date, due_date, documents_released, released_at, created_at, updated_at
		FROM loans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var loans []*domain.Loan
	err := r.db.SelectContext(ctx, &loans, query, userID)
	if err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) UpdateStatus(ctx context.Context, userID, loanID, status string) (bool, error) {
	// Decisions are one-directional: only a pending loan may change status.
	query := `
		UPDATE loans
		SET status = $3, updated_at = $4
		WHERE user_id = $1 AND loan_id = $2 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, userID, loanID, status, time.Now().UTC())
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

func (r *loanRepository) ReleaseDocuments(ctx context.Context, userID, loanID string, releasedAt time.Time) (bool, error) {
	// The flag guard in the WHERE clause makes concurrent callers race
	// safely: exactly one update wins, the rest see zero rows.
	query := `
		UPDATE loans
		SET documents_released = true, released_at = $3, updated_at = $3
		WHERE user_id = $1 AND loan_id = $2 AND documents_released = false
	`

	result, err := r.db.ExecContext(ctx, query, userID, loanID, releasedAt)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

func (r *loanRepository) ListReleasable(ctx context.Context, asOf time.Time) ([]*domain.Loan, error) {
	query := `
		SELECT id, loan_id, user_id, amount, purpose, wallet_address, status, issue_date, due_date, documents_released, released_at, created_at, updated_at
		FROM loans
		WHERE documents_released = false AND due_date <= $1
		ORDER BY due_date
	`

	var loans []*domain.Loan
	err := r.db.SelectContext(ctx, &loans, query, asOf)
	if err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error) {
	query := `
		SELECT id, loan_id, user_id, amount, purpose, wallet_address, status, issue_date, due_date, documents_released, released_at, created_at, updated_at
		FROM loans
		WHERE status = 'approved' AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date
	`

	var loans []*domain.Loan
	err := r.db.SelectContext(ctx, &loans, query, from, to)
	if err != nil {
		return nil, err
	}

	return loans, nil
}
