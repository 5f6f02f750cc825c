package dto

import "io"

// VideoUploadRequestDTO is what the upload workflow receives once the HTTP
// layer has resolved the caller and opened the multipart file.
type VideoUploadRequestDTO struct {
	UserID       string
	File         io.Reader // nil when the form had no file
	Filename     string
	ContentType  string
	DeclaredSize int64
	Title        string
	Description  string
	OriginalSize string // decimal string from the client, may be empty
}

type VideoUploadResponse struct {
	Video   VideoDTO `json:"video"`
	Success bool     `json:"success"`
	VideoID string   `json:"videoId"`
}

type UploadSummary struct {
	ID             string
	PublicID       string
	CompressedSize string
	Duration       int64
	Video          VideoDTO
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
