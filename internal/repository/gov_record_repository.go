package repository

import (
	"context"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"

	"github.com/jmoiron/sqlx"
)

type govRecordRepository struct {
	db *sqlx.DB
}

func NewGovRecordRepository(db *sqlx.DB) GovRecordRepository {
	return &govRecordRepository{db: db}
}

func (r *govRecordRepository) GetByPAN(ctx context.Context, pan string) (*domain.GovRecord, error) {
	query := `
		SELECT pan, name, phone, verified
		FROM gov_records
		WHERE pan = $1
	`

	var record domain.GovRecord
	err := r.db.GetContext(ctx, &record, query, pan)
	if err != nil {
		return nil, err
	}

	return &record, nil
}
