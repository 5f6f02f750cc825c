package repositories

import (
	"context"
	"io"

	"media-gallery/internal/domain/dto"
)

// MediaGateway is the hosted transformation service.
type MediaGateway interface {
	// Configured returns an error when the credentials needed for uploads
	// are missing.
	Configured() error
	Upload(ctx context.Context, file io.Reader, params dto.TransformParams) (*dto.TransformResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
	// URL is pure: no network, same input always gives the same URL.
	URL(publicID string, opts dto.URLOptions) (string, error)
}

// OrphanQueue receives assets that were uploaded but never recorded.
type OrphanQueue interface {
	Enqueue(ctx context.Context, asset dto.OrphanAsset) error
}
