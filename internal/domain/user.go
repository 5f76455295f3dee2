package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Trust score dimensions
const (
	DimensionIdentity  = "identity"
	DimensionFinancial = "financial"
)

// User represents a platform user and the trust score attached to them.
type User struct {
	UID                 string         `json:"uid" db:"uid"`
	Name                string         `json:"name" db:"name"`
	Email               string         `json:"email" db:"email"`
	Phone               string         `json:"phone" db:"phone"`
	WalletAddress       string         `json:"wallet" db:"wallet_address"`
	FaceLiveURL         string         `json:"face_live_url" db:"face_live_url"`
	FaceDocURL          string         `json:"face_doc_url" db:"face_doc_url"`
	IdentityScore       *int           `json:"identity_score" db:"identity_score"`
	FinancialScore      *int           `json:"financial_score" db:"financial_score"`
	IdentityVerifiedAt  *time.Time     `json:"identity_verified_at" db:"identity_verified_at"`
	FinancialVerifiedAt *time.Time     `json:"financial_verified_at" db:"financial_verified_at"`
	IdentityHistory     HistoryEntries `json:"identity_history" db:"identity_history"`
	FinancialHistory    HistoryEntries `json:"financial_history" db:"financial_history"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}

// HistoryEntry is one append-only record of a trust score write.
type HistoryEntry struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Date   string `json:"date"` // ISO 8601
}

// HistoryEntries is stored as a jsonb array column.
type HistoryEntries []HistoryEntry

func (h HistoryEntries) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (h *HistoryEntries) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported history column type %T", src)
	}
}

// GovRecord is an authoritative government identity record used to
// corroborate extracted identity evidence.
type GovRecord struct {
	PAN      string `json:"pan" db:"pan"`
	Name     string `json:"name" db:"name"`
	Phone    string `json:"phone" db:"phone"`
	Verified bool   `json:"verified" db:"verified"`
}

// DTOs

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
	Wallet *string `json:"wallet"`
}

type TrustScoreResponse struct {
	IdentityScore       *int           `json:"identity_score"`
	FinancialScore      *int           `json:"financial_score"`
	IdentityVerifiedAt  *time.Time     `json:"identity_verified_at"`
	FinancialVerifiedAt *time.Time     `json:"financial_verified_at"`
	IdentityHistory     HistoryEntries `json:"identity_history"`
	FinancialHistory    HistoryEntries `json:"financial_history"`
}
