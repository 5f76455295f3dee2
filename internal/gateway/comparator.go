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

// faceComparator calls a DeepFace-serving verify endpoint.
type faceComparator struct {
	endpoint string
	client   *http.Client
}

func NewBiometricComparator(cfg config.ComparatorConfig) BiometricComparator {
	return &faceComparator{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type verifyRequest struct {
	Img1 string `json:"img1"`
	Img2 string `json:"img2"`
}

type verifyResponse struct {
	Verified bool    `json:"verified"`
	Distance float64 `json:"distance"`
}

func (c *faceComparator) Compare(ctx context.Context, imageA, imageB []byte) (bool, float64, error) {
	payload, err := json.Marshal(verifyRequest{
		Img1: base64.StdEncoding.EncodeToString(imageA),
		Img2: base64.StdEncoding.EncodeToString(imageB),
	})
	if err != nil {
		return false, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/verify", bytes.NewReader(payload))
	if err != nil {
		return false, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, 0, customError.WrapUpstreamUnavailable("biometric comparator", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, 0, customError.WrapUpstreamUnavailable("biometric comparator",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, 0, customError.WrapUpstreamUnavailable("biometric comparator", err)
	}

	return body.Verified, body.Distance, nil
}
