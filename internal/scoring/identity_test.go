package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

func TestIdentityScore_AllBucketsYieldExactly100(t *testing.T) {
	scorer := &IdentityScorer{}
	record := &domain.GovRecord{PAN: "ABCDE1234F", Name: "Ayon Paul", Phone: "9876543210", Verified: true}

	evidence := IdentityEvidence{
		PAN:     "ABCDE1234F",
		Aadhaar: "123456789012",
		Name:    "ayon paul", // case-insensitive match
		Phone:   "9876543210",
	}

	result, err := scorer.Score(evidence, record, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.PANVerified)
	assert.True(t, result.AadhaarVerified)
	assert.Len(t, result.Breakdown, 4)
	assert.NotEmpty(t, result.Explanation())
}

func TestIdentityScore_MinimumBuckets(t *testing.T) {
	scorer := &IdentityScorer{}
	record := &domain.GovRecord{PAN: "ABCDE1234F", Name: "Ayon Paul", Phone: "9876543210", Verified: true}

	// Only PAN and name: no Aadhaar, no extracted phone.
	evidence := IdentityEvidence{PAN: "ABCDE1234F", Name: "Ayon Paul"}

	result, err := scorer.Score(evidence, record, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
	assert.False(t, result.AadhaarVerified)
}

func TestIdentityScore_BypassSkipsAuthoritativeLookup(t *testing.T) {
	scorer := &IdentityScorer{BypassPAN: "EMPPG7988Q"}

	assert.True(t, scorer.BypassApplies("EMPPG7988Q"))
	assert.False(t, scorer.BypassApplies("ABCDE1234F"))

	evidence := IdentityEvidence{PAN: "EMPPG7988Q", Name: "Ayon Paul"}

	// nil record: no lookup was performed.
	result, err := scorer.Score(evidence, nil, "9876543210")
	require.NoError(t, err)
	assert.True(t, result.PANVerified)
	assert.Equal(t, 50, result.Score) // 40 (PAN) + 10 (name)
	assert.Equal(t, "PAN bypass code detected.", result.Message)
}

func TestIdentityScore_BypassDisabledWhenUnset(t *testing.T) {
	scorer := &IdentityScorer{}

	assert.False(t, scorer.BypassApplies("EMPPG7988Q"))

	evidence := IdentityEvidence{PAN: "EMPPG7988Q", Name: "Ayon Paul"}
	_, err := scorer.Score(evidence, nil, "9876543210")
	assert.ErrorIs(t, err, customError.ErrEvidenceMismatch)
}

func TestIdentityScore_MissingPANOrName(t *testing.T) {
	scorer := &IdentityScorer{}

	_, err := scorer.Score(IdentityEvidence{Name: "Ayon Paul"}, nil, "9876543210")
	assert.ErrorIs(t, err, customError.ErrEvidenceMismatch)

	_, err = scorer.Score(IdentityEvidence{PAN: "ABCDE1234F"}, nil, "9876543210")
	assert.ErrorIs(t, err, customError.ErrEvidenceMismatch)
}

func TestIdentityScore_RecordMismatch(t *testing.T) {
	scorer := &IdentityScorer{}
	record := &domain.GovRecord{PAN: "ABCDE1234F", Name: "Someone Else", Phone: "9876543210", Verified: true}

	evidence := IdentityEvidence{PAN: "ABCDE1234F", Name: "Ayon Paul"}
	_, err := scorer.Score(evidence, record, "9876543210")
	assert.ErrorIs(t, err, customError.ErrEvidenceMismatch)
}

func TestIdentityScore_UnverifiedRecord(t *testing.T) {
	scorer := &IdentityScorer{}
	record := &domain.GovRecord{PAN: "ABCDE1234F", Name: "Ayon Paul", Phone: "9876543210", Verified: false}

	evidence := IdentityEvidence{PAN: "ABCDE1234F", Name: "Ayon Paul"}
	_, err := scorer.Score(evidence, record, "9876543210")
	assert.ErrorIs(t, err, customError.ErrEvidenceMismatch)
}

func TestIdentityScore_PhoneMismatchAwardsZeroBucket(t *testing.T) {
	scorer := &IdentityScorer{}
	record := &domain.GovRecord{PAN: "ABCDE1234F", Name: "Ayon Paul", Phone: "9876543210", Verified: true}

	evidence := IdentityEvidence{PAN: "ABCDE1234F", Name: "Ayon Paul", Phone: "1111111111"}

	result, err := scorer.Score(evidence, record, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
}
