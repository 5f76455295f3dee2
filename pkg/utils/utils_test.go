package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

var testRate = decimal.NewFromFloat(0.005)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateTotalDue_OnOrBeforeDueDate(t *testing.T) {
	principal := decimal.NewFromInt(10000)

	// Evaluated mid-term: no penalty, exactly the principal.
	total, err := CalculateTotalDue(principal, date("2024-01-01"), date("2024-01-31"), date("2024-01-15"), testRate)
	require.NoError(t, err)
	assert.True(t, total.Equal(principal))

	// Evaluated exactly on the due date: still no penalty.
	total, err = CalculateTotalDue(principal, date("2024-01-01"), date("2024-01-31"), date("2024-01-31"), testRate)
	require.NoError(t, err)
	assert.True(t, total.Equal(principal))
}

func TestCalculateTotalDue_Overdue(t *testing.T) {
	principal := decimal.NewFromInt(10000)

	// 10 days late: 10000 + 10000 * 0.005 * 10 = 10500
	total, err := CalculateTotalDue(principal, date("2024-01-01"), date("2024-01-31"), date("2024-02-10"), testRate)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(10500)), "got %s", total)
	assert.True(t, total.GreaterThan(principal))
}

func TestCalculateTotalDue_MonotonicInDaysLate(t *testing.T) {
	principal := decimal.NewFromInt(7500)
	prev := principal

	for day := 1; day <= 60; day++ {
		eval := date("2024-01-31").AddDate(0, 0, day)
		total, err := CalculateTotalDue(principal, date("2024-01-01"), date("2024-01-31"), eval, testRate)
		require.NoError(t, err)
		assert.True(t, total.GreaterThan(principal))
		assert.True(t, total.GreaterThanOrEqual(prev), "day %d: %s < %s", day, total, prev)
		prev = total
	}
}

func TestCalculateTotalDue_InvalidDateRange(t *testing.T) {
	principal := decimal.NewFromInt(10000)

	_, err := CalculateTotalDue(principal, date("2024-02-01"), date("2024-01-01"), date("2024-03-01"), testRate)
	assert.ErrorIs(t, err, customError.ErrInvalidDateRange)
}

func TestCalculateTotalDue_IgnoresTimeOfDay(t *testing.T) {
	principal := decimal.NewFromInt(10000)

	// Same calendar day as the due date, late in the evening: not overdue.
	eval := time.Date(2024, 1, 31, 23, 45, 0, 0, time.UTC)
	total, err := CalculateTotalDue(principal, date("2024-01-01"), date("2024-01-31"), eval, testRate)
	require.NoError(t, err)
	assert.True(t, total.Equal(principal))
}

func TestDaysLate(t *testing.T) {
	assert.Equal(t, 0, DaysLate(date("2024-01-31"), date("2024-01-15")))
	assert.Equal(t, 0, DaysLate(date("2024-01-31"), date("2024-01-31")))
	assert.Equal(t, 1, DaysLate(date("2024-01-31"), date("2024-02-01")))
	assert.Equal(t, 10, DaysLate(date("2024-01-31"), date("2024-02-10")))
}

func TestNormalizeDate(t *testing.T) {
	// 02:30 IST on March 6th is still March 5th in UTC.
	ts := time.Date(2024, 3, 6, 2, 30, 12, 0, time.FixedZone("IST", 5*3600+1800))
	normalized := NormalizeDate(ts)

	assert.Equal(t, time.UTC, normalized.Location())
	assert.Equal(t, date("2024-03-05"), normalized)
}
