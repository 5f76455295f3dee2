package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// ExtractedDocument is the raw extractor output for one uploaded file.
type ExtractedDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"extracted_text"`
}

// IdentityEvidence is the normalized identity evidence parsed from the
// extractor's freeform text. Every field is independently optional; an
// empty string means the field could not be extracted.
type IdentityEvidence struct {
	PAN     string
	Aadhaar string
	Name    string
	Phone   string
}

var (
	panPattern     = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	aadhaarPattern = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
	namePattern    = regexp.MustCompile(`(?i)Name\s*[:\-]?\s*([A-Za-z][A-Za-z ]*)`)
	phonePattern   = regexp.MustCompile(`Phone\s*[:\-]?\s*(\d{10})`)

	scorePattern       = regexp.MustCompile(`(?i)Score:\s*(\d{1,3})`)
	explanationPattern = regexp.MustCompile(`(?is)Explanation:\s*(.*)`)
)

// CombineTexts joins per-file extraction output into one evidence blob.
func CombineTexts(docs []ExtractedDocument) string {
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		texts = append(texts, doc.Text)
	}
	return strings.Join(texts, "\n\n")
}

// ParseIdentityEvidence pattern-matches identity fields out of combined
// extractor output. Missing fields stay empty rather than failing.
func ParseIdentityEvidence(combined string) IdentityEvidence {
	var evidence IdentityEvidence

	if m := panPattern.FindString(strings.ReplaceAll(combined, " ", "")); m != "" {
		evidence.PAN = strings.ToUpper(m)
	}

	if m := aadhaarPattern.FindString(combined); m != "" {
		evidence.Aadhaar = strings.ReplaceAll(m, " ", "")
	}

	if m := namePattern.FindStringSubmatch(combined); m != nil {
		evidence.Name = strings.TrimSpace(m[1])
	}

	if m := phonePattern.FindStringSubmatch(combined); m != nil {
		evidence.Phone = m[1]
	}

	return evidence
}

// ParseScoreResponse pulls "Score: N" and "Explanation: text" out of a
// reliability scorer response. ok is false when no score line is present.
func ParseScoreResponse(text string) (score int, explanation string, ok bool) {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if em := explanationPattern.FindStringSubmatch(text); em != nil {
		explanation = strings.TrimSpace(em[1])
	}

	return score, explanation, true
}
