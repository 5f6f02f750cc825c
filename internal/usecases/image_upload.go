package usecases

import (
	"bytes"
	"context"
	"strings"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/infrastructure/processor"
	"media-gallery/internal/pkg/config"
	consts "media-gallery/pkg/constants"
	"media-gallery/pkg/errors"
	"media-gallery/pkg/file"

	"go.uber.org/zap"
)

type ImageService interface {
	UploadImage(ctx context.Context, req *dto.ImageUploadRequestDTO) (*dto.ImageUploadResponse, error)
	SocialFormats() []dto.SocialFormat
	SocialImageURL(publicID, format string) (*dto.SocialImageURLResponse, error)
}

type imageService struct {
	gateway repositories.MediaGateway
	upload  config.UploadConfig
	log     *zap.Logger
}

func NewImageService(gateway repositories.MediaGateway, cfg *config.Config, log *zap.Logger) ImageService {
	return &imageService{
		gateway: gateway,
		upload:  cfg.Upload,
		log:     log.Named("images"),
	}
}

// UploadImage stores a still image for the social cropper. No metadata row
// is written for images.
func (s *imageService) UploadImage(ctx context.Context, req *dto.ImageUploadRequestDTO) (*dto.ImageUploadResponse, error) {
	if req.UserID == "" {
		return nil, errors.ErrUnauthorized(nil)
	}
	if req.File == nil {
		return nil, errors.ErrBadRequest("File not found")
	}

	limit := s.upload.MaxImageSize
	if req.DeclaredSize > limit {
		return nil, errors.ErrFileTooLarge(limit)
	}
	if err := s.gateway.Configured(); err != nil {
		return nil, errors.ErrConfiguration(err)
	}

	content, err := readLimited(req.File, limit)
	if err != nil {
		return nil, err
	}

	detected, ok := file.DetectImage(content, req.Filename)
	if !ok {
		return nil, errors.ErrUnsupportedMedia(detected)
	}

	info, err := processor.InspectImage(content)
	if err != nil {
		s.log.Info("rejected image upload", zap.String("filename", req.Filename), zap.Error(err))
		return nil, errors.ErrUnsupportedMedia(detected)
	}

	result, err := s.gateway.Upload(ctx, bytes.NewReader(content), dto.TransformParams{
		ResourceType: consts.ResourceImage,
		Folder:       s.upload.ImageFolder,
		Filename:     req.Filename,
		ContentType:  "image/" + info.Format,
	})
	if err != nil {
		return nil, errors.ErrUpstream(err)
	}

	s.log.Info("image uploaded", zap.String("public_id", result.PublicID), zap.String("user_id", req.UserID))

	format := result.Format
	if format == "" {
		format = info.Format
	}
	return &dto.ImageUploadResponse{
		PublicID: result.PublicID,
		Width:    info.Width,
		Height:   info.Height,
		Format:   format,
		URL:      result.SecureURL,
	}, nil
}

func (s *imageService) SocialFormats() []dto.SocialFormat {
	out := make([]dto.SocialFormat, len(socialFormats))
	copy(out, socialFormats)
	return out
}

func (s *imageService) SocialImageURL(publicID, format string) (*dto.SocialImageURLResponse, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil, errors.ErrBadRequest("publicId is required")
	}
	preset, ok := lookupSocialFormat(format)
	if !ok {
		return nil, errors.ErrBadRequest("Unknown social format: " + format)
	}

	url, err := s.gateway.URL(publicID, dto.URLOptions{
		ResourceType: consts.ResourceImage,
		Width:        preset.Width,
		Height:       preset.Height,
		Crop:         "fill",
		Gravity:      "auto",
	})
	if err != nil {
		return nil, errors.ErrConfiguration(err)
	}
	return &dto.SocialImageURLResponse{
		URL:         url,
		Width:       preset.Width,
		Height:      preset.Height,
		AspectRatio: preset.AspectRatio,
	}, nil
}
