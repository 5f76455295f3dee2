package utils

import (
	"time"

	"github.com/shopspring/decimal"

	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// DateLayout is the calendar-date wire format used across the API.
const DateLayout = "2006-01-02"

// NormalizeDate truncates a timestamp to UTC midnight so that loan date
// comparisons are calendar-date comparisons regardless of time-of-day.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysLate returns the number of whole days the evaluation date is past the
// due date. Zero when the evaluation date is on or before the due date.
func DaysLate(dueDate, evaluationDate time.Time) int {
	due := NormalizeDate(dueDate)
	eval := NormalizeDate(evaluationDate)
	if !eval.After(due) {
		return 0
	}
	return int(eval.Sub(due).Hours() / 24)
}

// CalculateTotalDue computes the amount owed on a loan at the evaluation
// date. On or before the due date the amount due is exactly the principal;
// past it, simple daily penalty interest accrues:
//
//	totalDue = principal + principal * dailyPenaltyRate * daysLate
//
// Returns ErrInvalidDateRange when the due date precedes the issue date.
func CalculateTotalDue(principal decimal.Decimal, issueDate, dueDate, evaluationDate time.Time, dailyPenaltyRate decimal.Decimal) (decimal.Decimal, error) {
	issue := NormalizeDate(issueDate)
	due := NormalizeDate(dueDate)

	if due.Before(issue) {
		return decimal.Zero, customError.ErrInvalidDateRange
	}

	daysLate := DaysLate(due, evaluationDate)
	if daysLate == 0 {
		return principal, nil
	}

	penalty := principal.Mul(dailyPenaltyRate).Mul(decimal.NewFromInt(int64(daysLate)))

	// Round to 2 decimal places for currency
	return principal.Add(penalty).Round(2), nil
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
