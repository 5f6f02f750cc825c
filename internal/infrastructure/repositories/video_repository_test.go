package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"media-gallery/internal/domain/entities"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/infrastructure/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database))
	return database
}

func newVideo(publicID string, createdAt time.Time) *entities.Video {
	return &entities.Video{
		Title:          "title " + publicID,
		Description:    "description",
		PublicID:       publicID,
		OriginalSize:   "1000",
		CompressedSize: "500",
		Duration:       3,
		CreatedAt:      createdAt,
	}
}

func TestVideoRepository_CreateAndGet(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	ctx := context.Background()

	video := newVideo("video-uploads/a", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, video))
	require.NotEqual(t, uuid.Nil, video.ID)

	got, err := repo.GetByID(ctx, video.ID.String())
	require.NoError(t, err)
	assert.Equal(t, video.ID, got.ID)
	assert.Equal(t, "video-uploads/a", got.PublicID)
	assert.Equal(t, "1000", got.OriginalSize)
	assert.Equal(t, "500", got.CompressedSize)
	assert.Equal(t, int64(3), got.Duration)
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repo.GetByID(context.Background(), "definitely-not-a-uuid")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestVideoRepository_ListNewestFirst(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order := []int{2, 0, 4, 1, 3}
	for _, offset := range order {
		v := newVideo(uuid.NewString(), base.Add(time.Duration(offset)*time.Minute))
		require.NoError(t, repo.Create(ctx, v))
	}

	videos, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, videos, len(order))
	for i := 1; i < len(videos); i++ {
		assert.True(t, videos[i-1].CreatedAt.After(videos[i].CreatedAt),
			"%v should be after %v", videos[i-1].CreatedAt, videos[i].CreatedAt)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(order)), count)
}

func TestVideoRepository_PublicIDIsUnique(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newVideo("video-uploads/dup", time.Now())))
	assert.Error(t, repo.Create(ctx, newVideo("video-uploads/dup", time.Now())))
}
