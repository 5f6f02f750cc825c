package main

import (
	"context"
	"path/filepath"
	"time"

	_ "media-gallery/docs"

	"media-gallery/internal/delivery/http/handlers"
	"media-gallery/internal/delivery/http/routers"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/infrastructure/db"
	"media-gallery/internal/infrastructure/identity"
	"media-gallery/internal/infrastructure/queue"
	infra_repo "media-gallery/internal/infrastructure/repositories"
	"media-gallery/internal/infrastructure/storage"
	"media-gallery/internal/pkg/config"
	"media-gallery/internal/usecases"
	"media-gallery/pkg/errors"

	_ "media-gallery/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title        Media Gallery API
// @version      1.0
// @description  Video upload, listing and playback URLs backed by a hosted media gateway.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	loadDotEnv()

	fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newDatabase,
			newRedisClient,
			newOrphanQueue,
			storage.NewMediaGateway,
			newIdentityVerifier,
			fx.Annotate(infra_repo.NewVideoRepository, fx.As(new(repositories.VideoRepository))),
			usecases.NewUploadService,
			usecases.NewVideoService,
			usecases.NewImageService,
			handlers.NewUploadHandler,
			newVideoHandler,
			handlers.NewHealthHandler,
			newFiberApp,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(registerRoutes, startServer),
	).Run()
}

func loadDotEnv() {
	root, err := config.FindProjectRoot()
	if err != nil {
		return
	}
	// .env yoksa sistem environment değişkenleri kullanılır
	_ = godotenv.Load(filepath.Join(root, ".env"))
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	database, err := db.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigration || cfg.Database.Driver == config.DriverSQLite {
		if err := db.Migrate(database, cfg.Database.Driver); err != nil {
			return nil, err
		}
		log.Info("migrations applied", zap.String("driver", cfg.Database.Driver))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close(database)
		},
	})
	return database, nil
}

// newRedisClient returns nil when REDIS_HOST is unset; orphaned assets are then only logged.
func newRedisClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *redis.Client {
	addr := cfg.Redis.Addr()
	if addr == "" {
		log.Warn("redis not configured, orphan queue disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
	})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func newOrphanQueue(rdb *redis.Client) repositories.OrphanQueue {
	if rdb == nil {
		return nil
	}
	return queue.NewRedisOrphanQueue(rdb)
}

func newIdentityVerifier(cfg *config.Config) repositories.IdentityVerifier {
	return identity.NewVerifier(cfg.Auth)
}

func newVideoHandler(videoService usecases.VideoService, imageService usecases.ImageService, cfg *config.Config, log *zap.Logger) *handlers.VideoHandler {
	return handlers.NewVideoHandler(videoService, imageService, log, cfg.IsDevelopment())
}

func newFiberApp(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		// multipart overhead on top of the largest accepted file
		BodyLimit: int(cfg.Upload.MaxVideoSize) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return errors.HandleError(c, log, err)
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}

func registerRoutes(
	app *fiber.App,
	uploadHandler *handlers.UploadHandler,
	videoHandler *handlers.VideoHandler,
	healthHandler *handlers.HealthHandler,
	verifier repositories.IdentityVerifier,
	log *zap.Logger,
) {
	routers.SetupMediaRoutes(app, videoHandler, healthHandler)
	routers.SetupUploadRoutes(app, uploadHandler, verifier, log)
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *zap.Logger) {
	addr := cfg.Server.Addr()

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("server starting", zap.String("addr", addr))
			go func() {
				if err := app.Listen(addr); err != nil {
					log.Error("server başlatılamadı", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutdown sinyali alındı, server kapatılıyor")
			ctxShut, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return app.ShutdownWithContext(ctxShut)
		},
	})
}
