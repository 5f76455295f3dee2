package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/gateway"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	"github.com/ayonpaul8906/trustbridge-new/internal/scoring"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// UploadedFile is one document received in a multipart verification call.
type UploadedFile struct {
	Name     string
	MimeType string
	Bytes    []byte
}

// IdentityVerificationResponse mirrors what the identity endpoint returns.
type IdentityVerificationResponse struct {
	TrustScore      int                         `json:"trust_score"`
	AadhaarVerified bool                        `json:"aadhaar_verified"`
	AadhaarNumber   string                      `json:"aadhaar_number,omitempty"`
	PANVerified     bool                        `json:"pan_verified"`
	PANNumber       string                      `json:"pan_number"`
	PhoneProvided   string                      `json:"phone_provided"`
	PhoneExtracted  string                      `json:"phone_extracted,omitempty"`
	NameExtracted   string                      `json:"name_extracted"`
	Results         []scoring.ExtractedDocument `json:"results"`
	Message         string                      `json:"message"`
}

// FinancialVerificationResponse mirrors what the financial endpoint returns.
type FinancialVerificationResponse struct {
	TrustScore  int                         `json:"trust_score"`
	Results     []scoring.ExtractedDocument `json:"results"`
	Explanation string                      `json:"explanation"`
	Message     string                      `json:"message"`
}

// VerificationService runs the evidence-to-trust-score pipelines.
type VerificationService struct {
	userRepo        repository.UserRepository
	govRepo         repository.GovRecordRepository
	extractor       gateway.DocumentExtractor
	comparator      gateway.BiometricComparator
	storage         gateway.ObjectStorage
	identityScorer  *scoring.IdentityScorer
	financialScorer *scoring.FinancialScorer
	aggregator      *scoring.Aggregator
	logger          *slog.Logger
}

func NewVerificationService(
	userRepo repository.UserRepository,
	govRepo repository.GovRecordRepository,
	extractor gateway.DocumentExtractor,
	comparator gateway.BiometricComparator,
	storage gateway.ObjectStorage,
	aggregator *scoring.Aggregator,
	cfg *config.Config,
	logger *slog.Logger,
) *VerificationService {
	return &VerificationService{
		userRepo:        userRepo,
		govRepo:         govRepo,
		extractor:       extractor,
		comparator:      comparator,
		storage:         storage,
		identityScorer:  &scoring.IdentityScorer{BypassPAN: cfg.Business.IdentityBypassPAN},
		financialScorer: &scoring.FinancialScorer{FallbackScore: cfg.Business.FinancialFallbackScore},
		aggregator:      aggregator,
		logger:          logger,
	}
}

func (s *VerificationService) extractAll(ctx context.Context, files []UploadedFile, prompt string) ([]scoring.ExtractedDocument, error) {
	results := make([]scoring.ExtractedDocument, 0, len(files))
	for _, file := range files {
		if !gateway.AllowedMimeType(file.MimeType) {
			continue
		}

		text, err := s.extractor.Extract(ctx, file.Bytes, file.MimeType, prompt)
		if err != nil {
			return nil, err
		}
		if text == "" {
			text = "No text extracted"
		}

		results = append(results, scoring.ExtractedDocument{
			Filename: file.Name,
			Text:     text,
		})
	}

	if len(results) == 0 {
		return nil, customError.NewBusinessError(
			customError.ErrCodeValidation,
			"No valid documents processed",
			nil,
		)
	}

	return results, nil
}

// VerifyIdentity extracts identity evidence, corroborates it against
// government records, scores it and records the identity dimension.
func (s *VerificationService) VerifyIdentity(ctx context.Context, uid, phone string, files []UploadedFile) (*IdentityVerificationResponse, error) {
	results, err := s.extractAll(ctx, files, scoring.IdentityExtractionPrompt)
	if err != nil {
		return nil, err
	}

	evidence := scoring.ParseIdentityEvidence(scoring.CombineTexts(results))
	if evidence.PAN == "" || evidence.Name == "" {
		return nil, customError.WrapEvidenceMismatch("PAN or Name not verified in documents")
	}

	var record *domain.GovRecord
	if !s.identityScorer.BypassApplies(evidence.PAN) {
		record, err = s.govRepo.GetByPAN(ctx, evidence.PAN)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, customError.WrapEvidenceMismatch(fmt.Sprintf("PAN %s not found in government records", evidence.PAN))
			}
			return nil, customError.WrapDatabaseError(err)
		}
	}

	result, err := s.identityScorer.Score(evidence, record, phone)
	if err != nil {
		return nil, err
	}

	reason := fmt.Sprintf("Identity verification completed. PAN Verified: %t, Aadhaar Present: %t",
		result.PANVerified, result.AadhaarVerified)
	if err := s.aggregator.Record(ctx, uid, domain.DimensionIdentity, result.Score, reason); err != nil {
		return nil, err
	}

	s.logger.Info("identity dimension scored", "uid", uid, "score", result.Score)

	return &IdentityVerificationResponse{
		TrustScore:      result.Score,
		AadhaarVerified: result.AadhaarVerified,
		AadhaarNumber:   evidence.Aadhaar,
		PANVerified:     result.PANVerified,
		PANNumber:       evidence.PAN,
		PhoneProvided:   phone,
		PhoneExtracted:  evidence.Phone,
		NameExtracted:   evidence.Name,
		Results:         results,
		Message:         "Identity verification completed successfully.",
	}, nil
}

// VerifyFinancial extracts financial evidence, asks the reliability scorer
// to judge it and records the financial dimension.
func (s *VerificationService) VerifyFinancial(ctx context.Context, uid string, files []UploadedFile) (*FinancialVerificationResponse, error) {
	results, err := s.extractAll(ctx, files, scoring.FinancialExtractionPrompt)
	if err != nil {
		return nil, err
	}

	judged, err := s.extractor.GenerateText(ctx, scoring.ReliabilityPrompt(scoring.CombineTexts(results)))
	if err != nil {
		return nil, err
	}

	result := s.financialScorer.Score(judged)
	if !result.Determined {
		s.logger.Warn("financial score fell back to default", "uid", uid, "score", result.Score)
	}

	if err := s.aggregator.Record(ctx, uid, domain.DimensionFinancial, result.Score, result.Explanation); err != nil {
		return nil, err
	}

	s.logger.Info("financial dimension scored", "uid", uid, "score", result.Score)

	return &FinancialVerificationResponse{
		TrustScore:  result.Score,
		Results:     results,
		Explanation: result.Explanation,
		Message:     "Financial documents evaluated successfully.",
	}, nil
}

// VerifyFace uploads both captures, stores their URLs on the user and
// returns the comparator's verdict unmodified.
func (s *VerificationService) VerifyFace(ctx context.Context, uid string, liveImage, docImage []byte) (*scoring.FaceVerdict, error) {
	liveURL, err := s.storage.Upload(ctx, liveImage, fmt.Sprintf("trustbridge/%s/live.jpg", uid), gateway.MimeJPEG)
	if err != nil {
		return nil, err
	}

	docURL, err := s.storage.Upload(ctx, docImage, fmt.Sprintf("trustbridge/%s/doc.jpg", uid), gateway.MimeJPEG)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SaveFaceImages(ctx, uid, liveURL, docURL); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	matched, distance, err := s.comparator.Compare(ctx, docImage, liveImage)
	if err != nil {
		return nil, err
	}

	verdict := scoring.NewFaceVerdict(matched, distance, liveURL, docURL)
	return &verdict, nil
}
