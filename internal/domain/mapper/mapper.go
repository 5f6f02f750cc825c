package mapper

import (
	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/entities"
)

func VideoToDTO(v *entities.Video) dto.VideoDTO {
	return dto.VideoDTO{
		ID:             v.ID.String(),
		Title:          v.Title,
		Description:    v.Description,
		PublicID:       v.PublicID,
		OriginalSize:   v.OriginalSize,
		CompressedSize: v.CompressedSize,
		Duration:       v.Duration,
		CreatedAt:      v.CreatedAt,
	}
}

func VideosToDTO(videos []entities.Video) []dto.VideoDTO {
	out := make([]dto.VideoDTO, 0, len(videos))
	for i := range videos {
		out = append(out, VideoToDTO(&videos[i]))
	}
	return out
}
