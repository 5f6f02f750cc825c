package queue

import (
	"context"
	"sync"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"

	"go.uber.org/zap"
)

// MaxDestroyAttempts bounds how often a single orphan is retried.
const MaxDestroyAttempts = 5

type failureSink interface {
	PushFailed(ctx context.Context, asset dto.OrphanAsset) error
}

type Worker struct {
	ID      int                    // worker id
	JobChan <-chan dto.OrphanAsset // iş kuyruğu
	Wg      *sync.WaitGroup
	Gateway repositories.MediaGateway
	Failed  failureSink
	Log     *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case asset, ok := <-w.JobChan:
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				w.process(ctx, asset)
			case <-ctx.Done():
				w.Log.Debug("stopping worker", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, asset dto.OrphanAsset) {
	log := w.Log.With(
		zap.Int("worker", w.ID),
		zap.String("public_id", asset.PublicID),
		zap.String("resource_type", asset.ResourceType),
	)

	err := w.Gateway.Destroy(ctx, asset.PublicID, asset.ResourceType)
	if err == nil {
		log.Info("orphan asset deleted")
		return
	}

	asset.Attempts++
	if asset.Attempts >= MaxDestroyAttempts {
		log.Error("giving up on orphan asset", zap.Int("attempts", asset.Attempts), zap.Error(err))
		return
	}
	log.Warn("orphan delete failed, parking for retry", zap.Int("attempts", asset.Attempts), zap.Error(err))
	if pushErr := w.Failed.PushFailed(ctx, asset); pushErr != nil {
		log.Error("could not park orphan asset", zap.Error(pushErr))
	}
}
