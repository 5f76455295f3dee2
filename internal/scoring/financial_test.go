package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinancialScore_Determined(t *testing.T) {
	scorer := &FinancialScorer{FallbackScore: 5}

	result := scorer.Score("Score: 72\nExplanation: Regular salary credits and low bounce rate.")

	assert.True(t, result.Determined)
	assert.Equal(t, 72, result.Score)
	assert.Equal(t, "Regular salary credits and low bounce rate.", result.Explanation)
}

func TestFinancialScore_FallbackOnMalformedResponse(t *testing.T) {
	scorer := &FinancialScorer{FallbackScore: 5}

	for _, response := range []string{
		"",
		"the model refused to answer",
		"Score: abc",
	} {
		result := scorer.Score(response)
		assert.False(t, result.Determined, "response %q", response)
		assert.Equal(t, 5, result.Score, "response %q", response)
		assert.NotEmpty(t, result.Explanation, "response %q", response)
	}
}

func TestFinancialScore_MissingExplanationGetsDefault(t *testing.T) {
	scorer := &FinancialScorer{FallbackScore: 5}

	result := scorer.Score("Score: 40")

	assert.True(t, result.Determined)
	assert.Equal(t, 40, result.Score)
	assert.NotEmpty(t, result.Explanation)
}

func TestFinancialScore_ClampsOutOfRange(t *testing.T) {
	scorer := &FinancialScorer{FallbackScore: 5}

	result := scorer.Score("Score: 150\nExplanation: overenthusiastic model")

	assert.True(t, result.Determined)
	assert.Equal(t, 100, result.Score)
}
