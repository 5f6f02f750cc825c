package dto

import "time"

type VideoDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublicID       string    `json:"publicId"`
	OriginalSize   string    `json:"originalSize"`
	CompressedSize string    `json:"compressedSize"`
	Duration       int64     `json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
}

type VideoDetailResponse struct {
	Video       VideoDTO `json:"video"`
	PlaybackURL string   `json:"playbackUrl"`
	PosterURL   string   `json:"posterUrl"`
	DownloadURL string   `json:"downloadUrl"`
}

type StoreHealthResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	VideoCount int64  `json:"videoCount"`
	Error      string `json:"error,omitempty"`
}
