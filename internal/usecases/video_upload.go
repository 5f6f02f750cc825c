package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/entities"
	"media-gallery/internal/domain/mapper"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/pkg/config"
	consts "media-gallery/pkg/constants"
	"media-gallery/pkg/errors"
	"media-gallery/pkg/file"
	"media-gallery/pkg/helper"

	"go.uber.org/zap"
)

type UploadService interface {
	UploadVideo(ctx context.Context, req *dto.VideoUploadRequestDTO) (*dto.UploadSummary, error)
}

type UploadOption func(*uploadService)

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) UploadOption {
	return func(s *uploadService) { s.now = now }
}

type uploadService struct {
	videoRepo repositories.VideoRepository
	gateway   repositories.MediaGateway
	orphans   repositories.OrphanQueue // nil when no queue is configured
	upload    config.UploadConfig
	log       *zap.Logger
	now       func() time.Time
}

func NewUploadService(
	videoRepo repositories.VideoRepository,
	gateway repositories.MediaGateway,
	orphans repositories.OrphanQueue,
	cfg *config.Config,
	log *zap.Logger,
	opts ...UploadOption,
) UploadService {
	s := &uploadService{
		videoRepo: videoRepo,
		gateway:   gateway,
		orphans:   orphans,
		upload:    cfg.Upload,
		log:       log.Named("upload"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UploadVideo runs validate -> transform -> persist. Every check happens
// before the gateway is called, and the insert is the last step, so a failed
// transform never leaves a row behind.
func (s *uploadService) UploadVideo(ctx context.Context, req *dto.VideoUploadRequestDTO) (*dto.UploadSummary, error) {
	if req.UserID == "" {
		return nil, errors.ErrUnauthorized(nil)
	}
	if req.File == nil {
		return nil, errors.ErrBadRequest("File not found")
	}

	title := helper.CleanText(req.Title)
	if title == "" {
		return nil, errors.ErrBadRequest("Title is required")
	}
	description := helper.CleanText(req.Description)
	if description == "" {
		return nil, errors.ErrBadRequest("Description is required")
	}

	var originalSize string
	if strings.TrimSpace(req.OriginalSize) != "" {
		size, ok := helper.ParseByteCount(req.OriginalSize)
		if !ok {
			return nil, errors.ErrBadRequest("originalSize must be a non-negative integer")
		}
		originalSize = size
	}

	limit := s.upload.MaxVideoSize
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
	if originalSize == "" {
		originalSize = strconv.Itoa(len(content))
	}

	detected, ok := file.DetectVideo(content, req.ContentType, req.Filename)
	if !ok {
		return nil, errors.ErrUnsupportedMedia(detected)
	}

	result, err := s.gateway.Upload(ctx, bytes.NewReader(content), dto.TransformParams{
		ResourceType: consts.ResourceVideo,
		Folder:       s.upload.VideoFolder,
		Filename:     req.Filename,
		ContentType:  detected,
		Transformation: []dto.Transformation{
			{Quality: "auto", FetchFormat: "mp4"},
		},
	})
	if err != nil {
		return nil, errors.ErrUpstream(err)
	}
	if result.PublicID == "" || result.Bytes < 0 {
		return nil, errors.ErrUpstream(fmt.Errorf("invalid result descriptor: public_id=%q bytes=%d", result.PublicID, result.Bytes))
	}

	video := &entities.Video{
		Title:          title,
		Description:    description,
		PublicID:       result.PublicID,
		OriginalSize:   originalSize,
		CompressedSize: strconv.FormatInt(result.Bytes, 10),
		Duration:       wholeSeconds(result.Duration),
		CreatedAt:      s.now(),
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.reportOrphan(ctx, result, err)
		return nil, errors.ErrService(err)
	}

	s.log.Info("video uploaded",
		zap.String("video_id", video.ID.String()),
		zap.String("public_id", video.PublicID),
		zap.String("user_id", req.UserID),
		zap.String("original_size", video.OriginalSize),
		zap.String("compressed_size", video.CompressedSize),
	)

	out := mapper.VideoToDTO(video)
	return &dto.UploadSummary{
		ID:             out.ID,
		PublicID:       out.PublicID,
		CompressedSize: out.CompressedSize,
		Duration:       out.Duration,
		Video:          out,
	}, nil
}

// reportOrphan hands an uploaded-but-unrecorded asset to the reconciliation
// queue. Without a queue the asset stays in the gateway and is only logged.
func (s *uploadService) reportOrphan(ctx context.Context, result *dto.TransformResult, cause error) {
	asset := dto.OrphanAsset{
		PublicID:     result.PublicID,
		ResourceType: consts.ResourceVideo,
		Reason:       cause.Error(),
	}
	if s.orphans == nil {
		s.log.Warn("metadata insert failed, asset left in gateway",
			zap.String("public_id", asset.PublicID), zap.Error(cause))
		return
	}
	if err := s.orphans.Enqueue(context.WithoutCancel(ctx), asset); err != nil {
		s.log.Error("could not queue orphan asset",
			zap.String("public_id", asset.PublicID), zap.Error(err))
		return
	}
	s.log.Warn("metadata insert failed, orphan asset queued for deletion",
		zap.String("public_id", asset.PublicID), zap.Error(cause))
}

// readLimited reads at most limit bytes; one byte more means the declared
// size lied and the upload is rejected.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.ErrBadRequest("File could not be read")
	}
	if int64(len(content)) > limit {
		return nil, errors.ErrFileTooLarge(limit)
	}
	if len(content) == 0 {
		return nil, errors.ErrBadRequest("File is empty")
	}
	return content, nil
}

func wholeSeconds(d float64) int64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0
	}
	return int64(math.Round(d))
}
