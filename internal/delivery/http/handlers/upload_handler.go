package handlers

import (
	"media-gallery/internal/delivery/http/middleware"
	"media-gallery/internal/domain/dto"
	"media-gallery/internal/usecases"
	"media-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadService usecases.UploadService
	imageService  usecases.ImageService
	log           *zap.Logger
}

func NewUploadHandler(uploadService usecases.UploadService, imageService usecases.ImageService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		imageService:  imageService,
		log:           log,
	}
}

// UploadVideo
//
// @Summary      Upload Video
// @Description  Sends a video to the media gateway for compression and records the result
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file          formData  file   true  "Video file"
// @Param        title         formData  string true  "Title"
// @Param        description   formData  string true  "Description"
// @Param        originalSize  formData  string false "Size of the file in bytes as seen by the client"
// @Success      200  {object}  dto.VideoUploadResponse
// @Failure      400  {object}  dto.ErrorResponse "Missing file or field"
// @Failure      401  {object}  dto.ErrorResponse "Unauthorized"
// @Failure      413  {object}  dto.ErrorResponse "File too large"
// @Failure      415  {object}  dto.ErrorResponse "Not a video"
// @Failure      500  {object}  dto.ErrorResponse "Gateway, configuration or store failure"
// @Router       /video-upload [post]
func (h *UploadHandler) UploadVideo(c *fiber.Ctx) error {
	req := &dto.VideoUploadRequestDTO{
		UserID:       middleware.UserID(c),
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		OriginalSize: c.FormValue("originalSize"),
	}

	// a missing part is reported by the usecase as 400
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return errors.HandleError(c, h.log, errors.ErrBadRequest("File could not be opened"))
		}
		defer f.Close()

		req.File = f
		req.Filename = fileHeader.Filename
		req.ContentType = fileHeader.Header.Get(fiber.HeaderContentType)
		req.DeclaredSize = fileHeader.Size
	}

	summary, err := h.uploadService.UploadVideo(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	return c.JSON(dto.VideoUploadResponse{
		Video:   summary.Video,
		Success: true,
		VideoID: summary.ID,
	})
}

// UploadImage
//
// @Summary      Upload Image
// @Description  Uploads a still image for the social share cropper
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  dto.ImageUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /image-upload [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	req := &dto.ImageUploadRequestDTO{
		UserID: middleware.UserID(c),
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return errors.HandleError(c, h.log, errors.ErrBadRequest("File could not be opened"))
		}
		defer f.Close()

		req.File = f
		req.Filename = fileHeader.Filename
		req.ContentType = fileHeader.Header.Get(fiber.HeaderContentType)
		req.DeclaredSize = fileHeader.Size
	}

	resp, err := h.imageService.UploadImage(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}
