package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LenderProfile represents a registered lender.
type LenderProfile struct {
	UID           string    `json:"uid" db:"uid"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	WalletAddress string    `json:"wallet" db:"wallet_address"`
	RegisteredAt  time.Time `json:"registered_at" db:"registered_at"`
}

// LenderOffer is a standing lending offer posted by a lender.
type LenderOffer struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	LenderUID     string          `json:"lender_uid" db:"lender_uid"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	InterestRate  decimal.Decimal `json:"interest_rate" db:"interest_rate"`
	WalletAddress string          `json:"wallet" db:"wallet_address"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// BorrowerSummary is what a lender sees when browsing borrowers.
type BorrowerSummary struct {
	UID            string `json:"uid"`
	Name           string `json:"name"`
	IdentityScore  *int   `json:"identity_score"`
	FinancialScore *int   `json:"financial_score"`
	PendingLoans   []Loan `json:"pending_loans"`
}

// DTOs

type RegisterLenderRequest struct {
	UID    string `json:"uid" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Wallet string `json:"wallet"`
}

type PostOfferRequest struct {
	UID          string          `json:"uid" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"required"`
	Wallet       string          `json:"wallet"`
}
