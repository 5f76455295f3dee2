package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentityEvidence_AllFields(t *testing.T) {
	combined := `Name: Ayon Paul
PAN: EMPPG 7988 Q
Aadhaar: 1234 5678 9012
Phone: 9876543210`

	evidence := ParseIdentityEvidence(combined)

	assert.Equal(t, "EMPPG7988Q", evidence.PAN)
	assert.Equal(t, "123456789012", evidence.Aadhaar)
	assert.Equal(t, "Ayon Paul", evidence.Name)
	assert.Equal(t, "9876543210", evidence.Phone)
}

func TestParseIdentityEvidence_MissingFieldsStayEmpty(t *testing.T) {
	evidence := ParseIdentityEvidence("Invalid document")

	assert.Empty(t, evidence.PAN)
	assert.Empty(t, evidence.Aadhaar)
	assert.Empty(t, evidence.Phone)
	// "Invalid document" has no Name label, so nothing is extracted.
	assert.Empty(t, evidence.Name)
}

func TestParseIdentityEvidence_PANAcrossSpaces(t *testing.T) {
	evidence := ParseIdentityEvidence("PAN Number: ABCDE 1234 F")
	assert.Equal(t, "ABCDE1234F", evidence.PAN)
}

func TestParseScoreResponse(t *testing.T) {
	score, explanation, ok := ParseScoreResponse("Score: 88\nExplanation: Multiple recent utility bills, all paid on time.")
	assert.True(t, ok)
	assert.Equal(t, 88, score)
	assert.Equal(t, "Multiple recent utility bills, all paid on time.", explanation)
}

func TestParseScoreResponse_CaseInsensitive(t *testing.T) {
	score, _, ok := ParseScoreResponse("score: 42\nexplanation: sparse evidence")
	assert.True(t, ok)
	assert.Equal(t, 42, score)
}

func TestParseScoreResponse_ClampsToRange(t *testing.T) {
	score, _, ok := ParseScoreResponse("Score: 150\nExplanation: out of band")
	assert.True(t, ok)
	assert.Equal(t, 100, score)
}

func TestParseScoreResponse_NoScoreLine(t *testing.T) {
	_, _, ok := ParseScoreResponse("The documents look fine to me.")
	assert.False(t, ok)
}

func TestCombineTexts(t *testing.T) {
	combined := CombineTexts([]ExtractedDocument{
		{Filename: "a.jpg", Text: "first"},
		{Filename: "b.jpg", Text: "second"},
	})
	assert.Equal(t, "first\n\nsecond", combined)
}
