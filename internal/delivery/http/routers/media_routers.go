package routers

import (
	"media-gallery/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) {
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")
	api.Get("/videos", videoHandler.ListVideos)
	api.Get("/videos/:id", videoHandler.GetVideo)
	api.Get("/videos/:id/download", videoHandler.DownloadVideo)
	api.Get("/social-formats", videoHandler.SocialFormats)
	api.Get("/social-share/url", videoHandler.SocialImageURL)
	api.Get("/test-db", healthHandler.StoreHealth)
}
