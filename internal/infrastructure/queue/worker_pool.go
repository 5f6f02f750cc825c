package queue

import (
	"context"
	"sync"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"

	"go.uber.org/zap"
)

type WorkerPool struct {
	JobChan chan dto.OrphanAsset
	wg      sync.WaitGroup
	ctx     context.Context    // graceful shutdown için
	cancel  context.CancelFunc // graceful shutdown için
}

func NewWorkerPool(workerCount int, gateway repositories.MediaGateway, failed failureSink, log *zap.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan dto.OrphanAsset, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Gateway: gateway,
			Failed:  failed,
			Log:     log,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) AddJob(asset dto.OrphanAsset) {
	p.JobChan <- asset
}

// Shutdown lets the workers drain what is already queued, then stops them.
func (p *WorkerPool) Shutdown() {
	close(p.JobChan)
	p.wg.Wait()
	p.cancel()
}
