package repository

import (
	"context"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"

	"github.com/jmoiron/sqlx"
)

type lenderRepository struct {
	db    *sqlx.DB
	loans LoanRepository
}

func NewLenderRepository(db *sqlx.DB, loans LoanRepository) LenderRepository {
	return &lenderRepository{db: db, loans: loans}
}

func (r *lenderRepository) Register(ctx context.Context, profile *domain.LenderProfile) error {
	query := `
		INSERT INTO lender_profiles (uid, name, email, wallet_address, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE SET
			name = $2,
			email = $3,
			wallet_address = $4
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.UID,
		profile.Name,
		profile.Email,
		profile.WalletAddress,
		profile.RegisteredAt,
	)

	return err
}

func (r *lenderRepository) CreateOffer(ctx context.Context, offer *domain.LenderOffer) error {
	query := `
		INSERT INTO lender_offers (id, lender_uid, amount, interest_rate, wallet_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		offer.ID,
		offer.LenderUID,
		offer.Amount,
		offer.InterestRate,
		offer.WalletAddress,
		offer.CreatedAt,
	)

	return err
}

func (r *lenderRepository) ListOffers(ctx context.Context, lenderUID string) ([]*domain.LenderOffer, error) {
	query := `
		SELECT id, lender_uid, amount, interest_rate, wallet_address, created_at
		FROM lender_offers
		WHERE lender_uid = $1
		ORDER BY created_at DESC
	`

	var offers []*domain.LenderOffer
	err := r.db.SelectContext(ctx, &offers, query, lenderUID)
	if err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *lenderRepository) ListBorrowers(ctx context.Context) ([]*domain.BorrowerSummary, error) {
	query := `
		SELECT u.uid, u.name, u.identity_score, u.financial_score
		FROM users u
		WHERE EXISTS (
			SELECT 1 FROM loans l WHERE l.user_id = u.uid AND l.status = 'pending'
		)
		ORDER BY u.uid
	`

	type borrowerRow struct {
		UID            string `db:"uid"`
		Name           string `db:"name"`
		IdentityScore  *int   `db:"identity_score"`
		FinancialScore *int   `db:"financial_score"`
	}

	var rows []borrowerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	borrowers := make([]*domain.BorrowerSummary, 0, len(rows))
	for _, row := range rows {
		loans, err := r.loans.ListByUser(ctx, row.UID)
		if err != nil {
			return nil, err
		}

		pending := make([]domain.Loan, 0, len(loans))
		for _, loan := range loans {
			if loan.Status == domain.LoanStatusPending {
				pending = append(pending, *loan)
			}
		}

		borrowers = append(borrowers, &domain.BorrowerSummary{
			UID:            row.UID,
			Name:           row.Name,
			IdentityScore:  row.IdentityScore,
			FinancialScore: row.FinancialScore,
			PendingLoans:   pending,
		})
	}

	return borrowers, nil
}
