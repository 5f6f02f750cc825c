package dto

import "io"

type ImageUploadRequestDTO struct {
	UserID       string
	File         io.Reader
	Filename     string
	ContentType  string
	DeclaredSize int64
}

type ImageUploadResponse struct {
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	URL      string `json:"url"`
}

type SocialFormat struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspectRatio"`
}

type SocialImageURLResponse struct {
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspectRatio"`
}
