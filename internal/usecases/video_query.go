package usecases

import (
	"context"
	stderrors "errors"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/mapper"
	"media-gallery/internal/domain/repositories"
	consts "media-gallery/pkg/constants"
	"media-gallery/pkg/errors"

	"go.uber.org/zap"
)

type VideoService interface {
	ListVideos(ctx context.Context) ([]dto.VideoDTO, error)
	GetVideo(ctx context.Context, id string) (*dto.VideoDTO, error)
	GetVideoDetail(ctx context.Context, id string) (*dto.VideoDetailResponse, error)
	DownloadURL(ctx context.Context, id string) (string, error)
	CountVideos(ctx context.Context) (int64, error)
}

type videoService struct {
	videoRepo repositories.VideoRepository
	gateway   repositories.MediaGateway
	log       *zap.Logger
}

func NewVideoService(videoRepo repositories.VideoRepository, gateway repositories.MediaGateway, log *zap.Logger) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		gateway:   gateway,
		log:       log.Named("videos"),
	}
}

func (s *videoService) ListVideos(ctx context.Context) ([]dto.VideoDTO, error) {
	videos, err := s.videoRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, errors.ErrService(err)
	}
	return mapper.VideosToDTO(videos), nil
}

func (s *videoService) GetVideo(ctx context.Context, id string) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if stderrors.Is(err, repositories.ErrNotFound) {
		return nil, errors.ErrNotFound(err)
	}
	if err != nil {
		return nil, errors.ErrService(err)
	}
	out := mapper.VideoToDTO(video)
	return &out, nil
}

func (s *videoService) GetVideoDetail(ctx context.Context, id string) (*dto.VideoDetailResponse, error) {
	video, err := s.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	base := dto.URLOptions{
		ResourceType: consts.ResourceVideo,
		Width:        consts.PlaybackWidth,
		Height:       consts.PlaybackHeight,
	}
	playback, err := s.gateway.URL(video.PublicID, base)
	if err != nil {
		return nil, errors.ErrConfiguration(err)
	}

	poster := base
	poster.Format = consts.PosterFormat
	posterURL, err := s.gateway.URL(video.PublicID, poster)
	if err != nil {
		return nil, errors.ErrConfiguration(err)
	}

	download := base
	download.Attachment = video.Title
	downloadURL, err := s.gateway.URL(video.PublicID, download)
	if err != nil {
		return nil, errors.ErrConfiguration(err)
	}

	return &dto.VideoDetailResponse{
		Video:       *video,
		PlaybackURL: playback,
		PosterURL:   posterURL,
		DownloadURL: downloadURL,
	}, nil
}

func (s *videoService) DownloadURL(ctx context.Context, id string) (string, error) {
	detail, err := s.GetVideoDetail(ctx, id)
	if err != nil {
		return "", err
	}
	return detail.DownloadURL, nil
}

func (s *videoService) CountVideos(ctx context.Context) (int64, error) {
	count, err := s.videoRepo.Count(ctx)
	if err != nil {
		return 0, errors.ErrService(err)
	}
	return count, nil
}
