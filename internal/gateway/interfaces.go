package gateway

import "context"

// Mime types the document extractor accepts.
const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimePDF  = "application/pdf"
)

// AllowedMimeType reports whether the extractor accepts the given mime type.
func AllowedMimeType(mime string) bool {
	switch mime {
	case MimeJPEG, MimePNG, MimePDF:
		return true
	}
	return false
}

// DocumentExtractor extracts freeform text from uploaded documents and
// answers plain-text prompts (the reliability scorer uses the latter).
type DocumentExtractor interface {
	// Extract runs a vision prompt against one document
	Extract(ctx context.Context, fileBytes []byte, mimeType, prompt string) (string, error)

	// GenerateText runs a text-only prompt
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// BiometricComparator compares two face images.
type BiometricComparator interface {
	Compare(ctx context.Context, imageA, imageB []byte) (matched bool, distance float64, err error)
}

// ObjectStorage uploads assets and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, fileBytes []byte, objectName, contentType string) (string, error)
}

// Mailer delivers transactional mail.
type Mailer interface {
	Send(toAddress, subject, body string) error
}
