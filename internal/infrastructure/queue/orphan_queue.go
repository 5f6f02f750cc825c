package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"
	consts "media-gallery/pkg/constants"

	"github.com/go-redis/redis/v8"
)

// ErrEmpty is returned by Dequeue when nothing arrived before the timeout.
var ErrEmpty = errors.New("queue empty")

// RedisOrphanQueue keeps orphaned assets in two redis lists: the work list
// and a list of assets whose deletion failed and should be retried later.
type RedisOrphanQueue struct {
	rdb       *redis.Client
	key       string
	failedKey string
}

var _ repositories.OrphanQueue = (*RedisOrphanQueue)(nil)

func NewRedisOrphanQueue(rdb *redis.Client) *RedisOrphanQueue {
	return &RedisOrphanQueue{
		rdb:       rdb,
		key:       consts.OrphanQueue,
		failedKey: consts.OrphanFailedQueue,
	}
}

func (q *RedisOrphanQueue) Enqueue(ctx context.Context, asset dto.OrphanAsset) error {
	return q.push(ctx, q.key, asset)
}

func (q *RedisOrphanQueue) PushFailed(ctx context.Context, asset dto.OrphanAsset) error {
	return q.push(ctx, q.failedKey, asset)
}

func (q *RedisOrphanQueue) push(ctx context.Context, key string, asset dto.OrphanAsset) error {
	serialized, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("orphan serialize edilemedi: %w", err)
	}
	return q.rdb.LPush(ctx, key, serialized).Err()
}

// Dequeue blocks up to timeout for the next asset.
func (q *RedisOrphanQueue) Dequeue(ctx context.Context, timeout time.Duration) (dto.OrphanAsset, error) {
	var asset dto.OrphanAsset

	val, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return asset, ErrEmpty
	}
	if err != nil {
		return asset, err
	}
	if err := json.Unmarshal([]byte(val[1]), &asset); err != nil {
		return asset, fmt.Errorf("orphan deserialize edilemedi: %w", err)
	}
	return asset, nil
}

// RequeueFailed moves every failed asset back to the work list.
func (q *RedisOrphanQueue) RequeueFailed(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.rdb.RPopLPush(ctx, q.failedKey, q.key).Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, err
		}
		moved++
	}
}

func (q *RedisOrphanQueue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.key).Result()
}
