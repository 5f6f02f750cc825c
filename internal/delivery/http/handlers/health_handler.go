package handlers

import (
	"media-gallery/internal/domain/dto"
	"media-gallery/internal/usecases"
	consts "media-gallery/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	videoService usecases.VideoService
	log          *zap.Logger
}

func NewHealthHandler(videoService usecases.VideoService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{videoService: videoService, log: log}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": consts.StatusOK})
}

// StoreHealth
//
// @Summary      Store Health
// @Description  Checks the metadata store and returns the number of videos
// @Tags         Health
// @Produce      json
// @Success      200  {object}  dto.StoreHealthResponse
// @Failure      500  {object}  dto.StoreHealthResponse
// @Router       /test-db [get]
func (h *HealthHandler) StoreHealth(c *fiber.Ctx) error {
	count, err := h.videoService.CountVideos(c.UserContext())
	if err != nil {
		h.log.Error("store health check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StoreHealthResponse{
			Success: false,
			Error:   "Database connection failed",
		})
	}
	return c.JSON(dto.StoreHealthResponse{
		Success:    true,
		Message:    "Database connection successful",
		VideoCount: count,
	})
}
