package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"media-gallery/internal/domain/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*RedisOrphanQueue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisOrphanQueue(rdb), mr
}

func TestRedisOrphanQueue_EnqueueDequeue(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	first := dto.OrphanAsset{PublicID: "video-uploads/a", ResourceType: "video", Reason: "insert failed"}
	second := dto.OrphanAsset{PublicID: "video-uploads/b", ResourceType: "video"}
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// FIFO: LPUSH + BRPOP
	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRedisOrphanQueue_DequeueEmpty(t *testing.T) {
	q, _ := newTestQueue(t)

	_, err := q.Dequeue(context.Background(), time.Second)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestRedisOrphanQueue_DequeueMalformed(t *testing.T) {
	q, mr := newTestQueue(t)
	_, err := mr.Lpush("orphan_assets", "{not json")
	require.NoError(t, err)

	_, err = q.Dequeue(context.Background(), time.Second)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmpty))
}

func TestRedisOrphanQueue_RequeueFailed(t *testing.T) {
	q, mr := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.PushFailed(ctx, dto.OrphanAsset{PublicID: "a", Attempts: 1}))
	require.NoError(t, q.PushFailed(ctx, dto.OrphanAsset{PublicID: "b", Attempts: 2}))

	failed, err := mr.List("orphan_assets_failed")
	require.NoError(t, err)
	assert.Len(t, failed, 2)

	moved, err := q.RequeueFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.False(t, mr.Exists("orphan_assets_failed"))

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "a", got.PublicID)
	assert.Equal(t, 1, got.Attempts)

	moved, err = q.RequeueFailed(ctx)
	require.NoError(t, err)
	assert.Zero(t, moved)
}
