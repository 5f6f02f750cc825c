package repositories

import (
	"context"
	"errors"

	"media-gallery/internal/domain/entities"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entities.Video) error
	GetByID(ctx context.Context, id string) (*entities.Video, error)
	ListNewestFirst(ctx context.Context) ([]entities.Video, error)
	Count(ctx context.Context) (int64, error)
}

// ErrNotFound is returned for unknown and malformed ids alike.
var ErrNotFound = errors.New("record not found")
