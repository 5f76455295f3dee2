package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/gateway"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/pkg/utils"
)

// LoanService owns the loan lifecycle: creation, decision, amount-due
// computation and collateral document escrow release.
type LoanService struct {
	loanRepo repository.LoanRepository
	userRepo repository.UserRepository
	mailer   gateway.Mailer
	config   *config.Config
	logger   *slog.Logger
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	userRepo repository.UserRepository,
	mailer gateway.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		userRepo: userRepo,
		mailer:   mailer,
		config:   cfg,
		logger:   logger,
	}
}

// CreateLoan creates a pending loan with a due date a fixed term after issue.
func (s *LoanService) CreateLoan(ctx context.Context, request *domain.CreateLoanRequest) (*domain.Loan, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.NewBusinessError(
			customError.ErrCodeInvalidLoanAmount,
			"Amount must be positive",
			customError.ErrInvalidLoanAmount,
		)
	}

	now := time.Now().UTC()
	issueDate := utils.NormalizeDate(now)

	loan := &domain.Loan{
		ID:            uuid.New(),
		LoanID:        uuid.NewString(),
		UserID:        request.UID,
		Amount:        request.Amount,
		Purpose:       request.Purpose,
		WalletAddress: request.Wallet,
		Status:        domain.LoanStatusPending,
		IssueDate:     issueDate,
		DueDate:       issueDate.AddDate(0, 0, s.config.Business.LoanTermDays),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info("loan created", "loan_id", loan.LoanID, "user_id", loan.UserID, "amount", loan.Amount)
	return loan, nil
}

// ListLoans returns all loans for a user, newest first.
func (s *LoanService) ListLoans(ctx context.Context, uid string) ([]*domain.Loan, error) {
	loans, err := s.loanRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return loans, nil
}

// GetStatus computes the amount currently owed and runs the escrow release
// check for a loan.
func (s *LoanService) GetStatus(ctx context.Context, uid, loanID string, now time.Time) (*domain.LoanStatusResponse, error) {
	loan, err := s.loanRepo.GetByLoanID(ctx, uid, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapLoanNotFound(loanID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	totalDue, err := utils.CalculateTotalDue(loan.Amount, loan.IssueDate, loan.DueDate, now, s.config.GetPenaltyDailyRate())
	if err != nil {
		return nil, customError.WrapInvalidDateRange(
			loan.IssueDate.Format(utils.DateLayout),
			loan.DueDate.Format(utils.DateLayout),
		)
	}

	released, err := s.CheckAndRelease(ctx, uid, loanID, loan, now)
	if err != nil {
		return nil, err
	}

	return &domain.LoanStatusResponse{
		LoanID:            loan.LoanID,
		Principal:         loan.Amount,
		TotalDue:          totalDue,
		IssueDate:         loan.IssueDate.Format(utils.DateLayout),
		DueDate:           loan.DueDate.Format(utils.DateLayout),
		CurrentDate:       utils.NormalizeDate(now).Format(utils.DateLayout),
		DocumentsReleased: loan.DocumentsReleased || released,
		Status:            loan.Status,
	}, nil
}

// Decide moves a pending loan to approved or rejected. Repeating the same
// decision is a no-op; a conflicting re-decision is rejected.
func (s *LoanService) Decide(ctx context.Context, uid, loanID, decision string) error {
	if decision != domain.LoanStatusApproved && decision != domain.LoanStatusRejected {
		return customError.WrapInvalidDecision(decision)
	}

	loan, err := s.loanRepo.GetByLoanID(ctx, uid, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapLoanNotFound(loanID)
		}
		return customError.WrapDatabaseError(err)
	}

	if loan.Decided() {
		if loan.Status == decision {
			return nil
		}
		return customError.WrapLoanAlreadyDecided(loanID, loan.Status)
	}

	changed, err := s.loanRepo.UpdateStatus(ctx, uid, loanID, decision)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}

	if !changed {
		// Lost a race with another decision call; re-read to see who won.
		loan, err = s.loanRepo.GetByLoanID(ctx, uid, loanID)
		if err != nil {
			return customError.WrapDatabaseError(err)
		}
		if loan.Status == decision {
			return nil
		}
		return customError.WrapLoanAlreadyDecided(loanID, loan.Status)
	}

	s.logger.Info("loan decided", "loan_id", loanID, "decision", decision)
	return nil
}

// CheckAndRelease releases held collateral documents when the due date has
// passed. Idempotent: at most one caller observes true, later calls see the
// flag already set and get false. Pass nil for loan to have it fetched.
func (s *LoanService) CheckAndRelease(ctx context.Context, uid, loanID string, loan *domain.Loan, currentDate time.Time) (bool, error) {
	if loan == nil {
		var err error
		loan, err = s.loanRepo.GetByLoanID(ctx, uid, loanID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return false, customError.WrapLoanNotFound(loanID)
			}
			return false, customError.WrapDatabaseError(err)
		}
	}

	if loan.DocumentsReleased {
		return false, nil
	}

	if utils.NormalizeDate(currentDate).Before(utils.NormalizeDate(loan.DueDate)) {
		// Not yet eligible is a normal outcome, not an error.
		return false, nil
	}

	released, err := s.loanRepo.ReleaseDocuments(ctx, uid, loanID, currentDate.UTC())
	if err != nil {
		return false, customError.WrapDatabaseError(err)
	}

	if released {
		s.logger.Info("collateral documents released", "loan_id", loanID, "user_id", uid)
	}

	return released, nil
}

// ReleaseSweep releases documents for every loan past its due date, for the
// scheduler. Returns how many loans were released.
func (s *LoanService) ReleaseSweep(ctx context.Context, now time.Time) (int, error) {
	loans, err := s.loanRepo.ListReleasable(ctx, utils.NormalizeDate(now))
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	released := 0
	for _, loan := range loans {
		ok, err := s.CheckAndRelease(ctx, loan.UserID, loan.LoanID, loan, now)
		if err != nil {
			s.logger.Error("release sweep failed for loan", "loan_id", loan.LoanID, "error", err)
			continue
		}
		if ok {
			released++
		}
	}

	return released, nil
}

// SendPaymentReminders mails borrowers whose loans come due within the
// configured window. Returns how many reminders went out.
func (s *LoanService) SendPaymentReminders(ctx context.Context, now time.Time) (int, error) {
	from := utils.NormalizeDate(now)
	to := from.AddDate(0, 0, s.config.Scheduler.ReminderDaysBefore)

	loans, err := s.loanRepo.ListDueBetween(ctx, from, to)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	sent := 0
	for _, loan := range loans {
		user, err := s.userRepo.Get(ctx, loan.UserID)
		if err != nil || user.Email == "" {
			continue
		}

		body := fmt.Sprintf("Your loan %s of %s is due on %s. Please arrange repayment to avoid overdue penalties.",
			loan.LoanID, loan.Amount.StringFixed(2), loan.DueDate.Format(utils.DateLayout))

		if err := s.mailer.Send(user.Email, "TrustBridge payment reminder", body); err != nil {
			s.logger.Error("reminder mail failed", "loan_id", loan.LoanID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}
