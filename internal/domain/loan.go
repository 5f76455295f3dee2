package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LoanStatusPending  = "pending"
	LoanStatusApproved = "approved"
	LoanStatusRejected = "rejected"
)

// Loan represents a borrower's loan account
type Loan struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	LoanID            string          `json:"loan_id" db:"loan_id"`
	UserID            string          `json:"user_id" db:"user_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Purpose           string          `json:"purpose" db:"purpose"`
	WalletAddress     string          `json:"wallet" db:"wallet_address"`
	Status            string          `json:"status" db:"status"`
	IssueDate         time.Time       `json:"issue_date" db:"issue_date"`
	DueDate           time.Time       `json:"due_date" db:"due_date"`
	DocumentsReleased bool            `json:"documents_released" db:"documents_released"`
	ReleasedAt        *time.Time      `json:"released_at,omitempty" db:"released_at"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// Decided reports whether the loan has left the pending state.
func (l *Loan) Decided() bool {
	return l.Status == LoanStatusApproved || l.Status == LoanStatusRejected
}

// DTOs for requests and responses

type CreateLoanRequest struct {
	UID     string          `json:"uid" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Purpose string          `json:"purpose" validate:"required"`
	Wallet  string          `json:"wallet" validate:"required"`
}

type CreateLoanResponse struct {
	LoanID string `json:"loan_id"`
	Status string `json:"status"`
}

type LoanDecisionRequest struct {
	Decision string `json:"decision" validate:"required"`
}

type LoanStatusResponse struct {
	LoanID            string          `json:"loan_id"`
	Principal         decimal.Decimal `json:"principal"`
	TotalDue          decimal.Decimal `json:"total_due"`
	IssueDate         string          `json:"issue_date"`
	DueDate           string          `json:"due_date"`
	CurrentDate       string          `json:"current_date"`
	DocumentsReleased bool            `json:"documents_released"`
	Status            string          `json:"status"`
}
