package scoring

// FaceVerdict is the biometric comparator's verdict passed through
// unmodified, plus the stored asset URLs for audit.
type FaceVerdict struct {
	Match        bool    `json:"match"`
	Confidence   float64 `json:"confidence"`
	Message      string  `json:"message"`
	LiveImageURL string  `json:"live_image_url"`
	DocImageURL  string  `json:"doc_image_url"`
}

// NewFaceVerdict wraps a comparator result for the API response.
func NewFaceVerdict(matched bool, distance float64, liveURL, docURL string) FaceVerdict {
	message := "Face does not match"
	if matched {
		message = "Face match"
	}

	return FaceVerdict{
		Match:        matched,
		Confidence:   distance,
		Message:      message,
		LiveImageURL: liveURL,
		DocImageURL:  docURL,
	}
}
