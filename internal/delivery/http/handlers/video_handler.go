package handlers

import (
	stderrors "errors"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/usecases"
	"media-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService usecases.VideoService
	imageService usecases.ImageService
	log          *zap.Logger
	debug        bool // expose error details in list failures
}

func NewVideoHandler(videoService usecases.VideoService, imageService usecases.ImageService, log *zap.Logger, debug bool) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		imageService: imageService,
		log:          log,
		debug:        debug,
	}
}

// ListVideos
//
// @Summary      List Videos
// @Description  Returns every stored video, newest first
// @Tags         Videos
// @Produce      json
// @Success      200  {array}   dto.VideoDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.videoService.ListVideos(c.UserContext())
	if err != nil {
		h.log.Error("listing videos failed", zap.Error(err))
		resp := dto.ErrorResponse{Error: "Failed to fetch videos", Code: errors.CodeService}
		var ae *errors.AppError
		if stderrors.As(err, &ae) {
			resp.Error = ae.Message
			resp.Code = ae.Code
			if h.debug && ae.Err != nil {
				resp.Details = ae.Err.Error()
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return c.JSON(videos)
}

// GetVideo
//
// @Summary      Get Video
// @Description  Returns one video with playback, poster and download URLs
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.VideoDetailResponse
// @Failure      404  {object}  dto.ErrorResponse "Video not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	detail, err := h.videoService.GetVideoDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(detail)
}

// DownloadVideo
//
// @Summary      Download Video
// @Description  Redirects to a download URL named after the video title
// @Tags         Videos
// @Param        id   path  string true "Video ID"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse "Video not found"
// @Router       /videos/{id}/download [get]
func (h *VideoHandler) DownloadVideo(c *fiber.Ctx) error {
	url, err := h.videoService.DownloadURL(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.Redirect(url, fiber.StatusFound)
}

// SocialFormats
//
// @Summary      Social Formats
// @Description  Lists the crop presets offered by the social share tool
// @Tags         Social
// @Produce      json
// @Success      200  {array}  dto.SocialFormat
// @Router       /social-formats [get]
func (h *VideoHandler) SocialFormats(c *fiber.Ctx) error {
	return c.JSON(h.imageService.SocialFormats())
}

// SocialImageURL
//
// @Summary      Social Image URL
// @Description  Builds the cropped delivery URL of an uploaded image for a preset
// @Tags         Social
// @Produce      json
// @Param        publicId  query  string true  "Public ID returned by /image-upload"
// @Param        format    query  string false "Preset name"
// @Success      200  {object}  dto.SocialImageURLResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /social-share/url [get]
func (h *VideoHandler) SocialImageURL(c *fiber.Ctx) error {
	resp, err := h.imageService.SocialImageURL(c.Query("publicId"), c.Query("format"))
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}
