package repositories

import (
	"context"
	"errors"

	"media-gallery/internal/domain/entities"
	"media-gallery/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

var _ repositories.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entities.Video, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	var entity entities.Video
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", parsed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *VideoRepository) ListNewestFirst(ctx context.Context) ([]entities.Video, error) {
	var videos []entities.Video
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Video{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
