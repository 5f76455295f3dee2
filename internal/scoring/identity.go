package scoring

import (
	"fmt"
	"strings"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// Identity score point buckets
const (
	pointsPANVerified      = 40
	pointsAadhaarExtracted = 30
	pointsPhoneMatched     = 20
	pointsNameExtracted    = 10

	maxScore = 100
)

// Criterion is one explanation line of a score breakdown.
type Criterion struct {
	Name   string `json:"criterion"`
	Points int    `json:"points"`
}

// IdentityResult is the outcome of scoring identity evidence.
type IdentityResult struct {
	Score           int         `json:"score"`
	Breakdown       []Criterion `json:"breakdown"`
	PANVerified     bool        `json:"pan_verified"`
	AadhaarVerified bool        `json:"aadhaar_verified"`
	Message         string      `json:"message"`
}

// Explanation renders the breakdown in the stored history format.
func (r *IdentityResult) Explanation() string {
	parts := make([]string, 0, len(r.Breakdown))
	for _, c := range r.Breakdown {
		parts = append(parts, fmt.Sprintf("%s (+%d)", c.Name, c.Points))
	}
	return strings.Join(parts, " | ")
}

// IdentityScorer awards fixed point buckets for corroborated identity
// evidence. It is a pure component: the authoritative record lookup is
// the caller's job.
type IdentityScorer struct {
	// BypassPAN is the test/ops escape hatch: when non-empty and equal to
	// the extracted PAN, the authoritative lookup is skipped and the PAN
	// is treated as verified.
	BypassPAN string
}

// BypassApplies reports whether the extracted PAN triggers the configured
// bypass, letting callers skip the authoritative lookup entirely.
func (s *IdentityScorer) BypassApplies(pan string) bool {
	return s.BypassPAN != "" && pan == s.BypassPAN
}

// Score validates the evidence against the authoritative record and awards
// point buckets. record may be nil only when the bypass applies.
func (s *IdentityScorer) Score(evidence IdentityEvidence, record *domain.GovRecord, submittedPhone string) (*IdentityResult, error) {
	if evidence.PAN == "" || evidence.Name == "" {
		return nil, customError.WrapEvidenceMismatch("PAN or Name not verified in documents")
	}

	result := &IdentityResult{}

	if s.BypassApplies(evidence.PAN) {
		result.PANVerified = true
		result.Message = "PAN bypass code detected."
	} else {
		if record == nil {
			return nil, customError.WrapEvidenceMismatch(fmt.Sprintf("PAN %s not found in government records", evidence.PAN))
		}
		if !record.Verified {
			return nil, customError.WrapEvidenceMismatch("Government record not verified")
		}
		// Names compare case-insensitively, phones digit-exact.
		if !strings.EqualFold(evidence.Name, record.Name) || submittedPhone != record.Phone {
			return nil, customError.WrapEvidenceMismatch("Details do not match government records")
		}
		result.PANVerified = true
		result.Message = "PAN and user details matched government records."
	}

	result.AadhaarVerified = evidence.Aadhaar != ""

	if result.PANVerified {
		result.Score += pointsPANVerified
		result.Breakdown = append(result.Breakdown, Criterion{"PAN matched with government records", pointsPANVerified})
	}

	if result.AadhaarVerified {
		result.Score += pointsAadhaarExtracted
		result.Breakdown = append(result.Breakdown, Criterion{"Aadhaar number successfully extracted", pointsAadhaarExtracted})
	}

	if evidence.Phone != "" && evidence.Phone == submittedPhone {
		result.Score += pointsPhoneMatched
		result.Breakdown = append(result.Breakdown, Criterion{"Phone number matches the submitted one", pointsPhoneMatched})
	} else {
		result.Breakdown = append(result.Breakdown, Criterion{"Phone number mismatch or not found", 0})
	}

	if evidence.Name != "" {
		result.Score += pointsNameExtracted
		result.Breakdown = append(result.Breakdown, Criterion{"Name extracted from document", pointsNameExtracted})
	}

	if result.Score > maxScore {
		result.Score = maxScore
	}

	return result, nil
}
