package gateway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// gcsStorage uploads face images and document assets to a GCS bucket.
type gcsStorage struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

func NewObjectStorage(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = "https://storage.googleapis.com/" + cfg.Bucket
	}

	return &gcsStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (g *gcsStorage) Upload(ctx context.Context, fileBytes []byte, objectName, contentType string) (string, error) {
	writer := g.client.Bucket(g.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if err := writeAndClose(writer, fileBytes); err != nil {
		return "", customError.WrapUpstreamUnavailable("object storage", err)
	}

	return fmt.Sprintf("%s/%s", g.publicBaseURL, objectName), nil
}

// writeAndClose pushes the payload and always closes the writer, so a
// failed write does not leave the upload session open.
func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
