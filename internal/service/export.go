package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"unihub/internal/config"
)

// ExportService hands out download links for the complete catalog table
// kept in object storage, so the chat layer can offer a "full list" button
// without shipping the file through the bot.
type ExportService struct {
	client  *minio.Client
	bucket  string
	object  string
	linkTTL time.Duration
}

// NewExportService connects to the configured object store. It returns
// (nil, nil) when no endpoint is configured — export is an optional feature.
func NewExportService(cfg *config.Config) (*ExportService, error) {
	if cfg.ExportEndpoint == "" {
		return nil, nil
	}
	if cfg.ExportBucket == "" {
		return nil, fmt.Errorf("export bucket is required when an export endpoint is set")
	}

	client, err := minio.New(cfg.ExportEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ExportAccessKey, cfg.ExportSecretKey, ""),
		Secure: cfg.ExportUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	return &ExportService{
		client:  client,
		bucket:  cfg.ExportBucket,
		object:  cfg.ExportObject,
		linkTTL: cfg.ExportLinkTTL,
	}, nil
}

// Link returns a presigned GET URL for the full-table object.
func (e *ExportService) Link(ctx context.Context) (string, error) {
	reqParams := make(url.Values)
	u, err := e.client.PresignedGetObject(ctx, e.bucket, e.object, e.linkTTL, reqParams)
	if err != nil {
		return "", fmt.Errorf("presign export object: %w", err)
	}
	return u.String(), nil
}
