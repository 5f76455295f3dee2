package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, uid string) (*domain.User, error) {
	query := `
		SELECT uid, name, email, phone, wallet_address, face_live_url, face_doc_url,
		       identity_score, financial_score, identity_verified_at, financial_verified_at,
		       identity_history, financial_history, created_at, updated_at
		FROM users
		WHERE uid = $1
	`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, uid)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpsertProfile(ctx context.Context, uid string, req *domain.UpdateProfileRequest) error {
	// Merge semantics: unset fields keep their stored value.
	query := `
		INSERT INTO users (uid, name, email, phone, wallet_address, created_at, updated_at)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''), $6, $6)
		ON CONFLICT (uid) DO UPDATE SET
			name = COALESCE($2, users.name),
			email = COALESCE($3, users.email),
			phone = COALESCE($4, users.phone),
			wallet_address = COALESCE($5, users.wallet_address),
			updated_at = $6
	`

	_, err := r.db.ExecContext(ctx, query, uid, req.Name, req.Email, req.Phone, req.Wallet, time.Now().UTC())
	return err
}

func (r *userRepository) SaveFaceImages(ctx context.Context, uid, liveURL, docURL string) error {
	query := `
		INSERT INTO users (uid, face_live_url, face_doc_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (uid) DO UPDATE SET
			face_live_url = $2,
			face_doc_url = $3,
			updated_at = $4
	`

	_, err := r.db.ExecContext(ctx, query, uid, liveURL, docURL, time.Now().UTC())
	return err
}

func (r *userRepository) RecordTrustScore(ctx context.Context, uid, dimension string, score int, entry domain.HistoryEntry) error {
	var scoreCol, atCol, historyCol string
	switch dimension {
	case domain.DimensionIdentity:
		scoreCol, atCol, historyCol = "identity_score", "identity_verified_at", "identity_history"
	case domain.DimensionFinancial:
		scoreCol, atCol, historyCol = "financial_score", "financial_verified_at", "financial_history"
	default:
		return fmt.Errorf("unknown trust score dimension %q", dimension)
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// Column names come from the switch above, never from input. The
	// jsonb concatenation keeps the history append atomic per write, and
	// the statement touches only this dimension's columns so concurrent
	// writes to the other dimension cannot clobber each other.
	query := fmt.Sprintf(`
		INSERT INTO users (uid, %[1]s, %[2]s, %[3]s, created_at, updated_at)
		VALUES ($1, $2, $3, jsonb_build_array($4::jsonb), $3, $3)
		ON CONFLICT (uid) DO UPDATE SET
			%[1]s = $2,
			%[2]s = $3,
			%[3]s = COALESCE(users.%[3]s, '[]'::jsonb) || $4::jsonb,
			updated_at = $3
	`, scoreCol, atCol, historyCol)

	_, err = r.db.ExecContext(ctx, query, uid, score, time.Now().UTC(), string(entryJSON))
	return err
}
