package routers

import (
	"media-gallery/internal/delivery/http/handlers"
	"media-gallery/internal/delivery/http/middleware"
	"media-gallery/internal/domain/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupUploadRoutes registers the authenticated write endpoints. The guard is
// attached per route so unmatched /api paths still fall through to 404.
func SetupUploadRoutes(app *fiber.App, uploadHandler *handlers.UploadHandler, verifier repositories.IdentityVerifier, log *zap.Logger) {
	requireAuth := middleware.RequireAuth(verifier, log)

	api := app.Group("/api")
	api.Post("/video-upload", requireAuth, uploadHandler.UploadVideo)
	api.Post("/image-upload", requireAuth, uploadHandler.UploadImage)
}
