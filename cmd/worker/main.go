package main //worker

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"media-gallery/internal/infrastructure/queue"
	"media-gallery/internal/infrastructure/storage"
	"media-gallery/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	workerCount    = 4
	dequeueTimeout = 5 * time.Second
	requeueSpec    = "0 */5 * * * *" // her 5 dakikada bir
)

func main() {
	if root, err := config.FindProjectRoot(); err == nil {
		_ = godotenv.Load(filepath.Join(root, ".env"))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	addr := cfg.Redis.Addr()
	if addr == "" {
		log.Fatal("REDIS_HOST is required for the orphan worker")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
	})
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis bağlantısı başarısız", zap.String("addr", addr), zap.Error(err))
	}

	gateway := storage.NewMediaGateway(cfg)
	if err := gateway.Configured(); err != nil {
		log.Fatal("media gateway not configured", zap.Error(err))
	}

	orphans := queue.NewRedisOrphanQueue(rdb)
	pool := queue.NewWorkerPool(workerCount, gateway, orphans, log)

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(requeueSpec, func() {
		moved, err := orphans.RequeueFailed(ctx)
		if err != nil {
			log.Error("requeue failed", zap.Error(err))
			return
		}
		if moved > 0 {
			log.Info("failed orphans requeued", zap.Int("count", moved))
		}
		if pending, err := orphans.Len(ctx); err == nil {
			log.Info("orphan queue depth", zap.Int64("pending", pending))
		}
	}); err != nil {
		log.Fatal("cron job eklenemedi", zap.Error(err))
	}
	c.Start()

	log.Info("orphan worker started", zap.String("redis", addr), zap.Int("workers", workerCount))

	// BRPOP loop to feed the pool
	for ctx.Err() == nil {
		asset, err := orphans.Dequeue(ctx, dequeueTimeout)
		if errors.Is(err, queue.ErrEmpty) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Warn("dequeue failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		pool.AddJob(asset)
	}

	log.Info("shutdown sinyali alındı, worker kapatılıyor")
	<-c.Stop().Done()
	pool.Shutdown()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
