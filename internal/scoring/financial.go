package scoring

// FinancialResult is the outcome of scoring financial evidence.
type FinancialResult struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
	Determined  bool   `json:"determined"`
}

// FinancialScorer turns a reliability scorer's freeform response into a
// bounded score. A response without a recognizable "Score: N" line falls
// back to a conservative fixed score instead of failing the request.
type FinancialScorer struct {
	FallbackScore int
}

const fallbackExplanation = "Score could not be determined from documents."

// Score never returns an error: unparseable input degrades to the
// fallback score with a non-empty explanation.
func (s *FinancialScorer) Score(scorerResponse string) *FinancialResult {
	score, explanation, ok := ParseScoreResponse(scorerResponse)
	if !ok {
		return &FinancialResult{
			Score:       s.FallbackScore,
			Explanation: fallbackExplanation,
			Determined:  false,
		}
	}

	if explanation == "" {
		explanation = fallbackExplanation
	}

	return &FinancialResult{
		Score:       score,
		Explanation: explanation,
		Determined:  true,
	}
}
