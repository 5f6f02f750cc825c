package storage

import (
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/pkg/config"
)

// NewMediaGateway picks the backend named by MEDIA_BACKEND.
func NewMediaGateway(cfg *config.Config) repositories.MediaGateway {
	if cfg.Media.Backend == config.BackendS3 {
		return NewS3Storage(cfg.Media)
	}
	return NewCloudinaryStorage(cfg.Media)
}
