package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// geminiExtractor calls a generateContent-style vision/text model endpoint.
type geminiExtractor struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewDocumentExtractor(cfg config.ExtractorConfig) DocumentExtractor {
	return &geminiExtractor{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []struct {
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (e *geminiExtractor) Extract(ctx context.Context, fileBytes []byte, mimeType, prompt string) (string, error) {
	parts := []generatePart{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(fileBytes),
		}},
	}
	return e.generate(ctx, parts)
}

func (e *geminiExtractor) GenerateText(ctx context.Context, prompt string) (string, error) {
	return e.generate(ctx, []generatePart{{Text: prompt}})
}

func (e *geminiExtractor) generate(ctx context.Context, parts []generatePart) (string, error) {
	var reqBody generateRequest
	reqBody.Contents = append(reqBody.Contents, struct {
		Parts []generatePart `json:"parts"`
	}{Parts: parts})
	reqBody.GenerationConfig.Temperature = 0.0

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", e.endpoint, e.model, e.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", customError.WrapUpstreamUnavailable("document extractor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", customError.WrapUpstreamUnavailable("document extractor",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", customError.WrapUpstreamUnavailable("document extractor", err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return body.Candidates[0].Content.Parts[0].Text, nil
}
