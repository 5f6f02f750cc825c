package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	CodeUnauthorized     = "unauthorized"
	CodeBadRequest       = "bad_request"
	CodeFileTooLarge     = "file_too_large"
	CodeUnsupportedMedia = "unsupported_media_type"
	CodeConfiguration    = "configuration_error"
	CodeUpstream         = "upstream_error"
	CodeNotFound         = "not_found"
	CodeService          = "service_error"
	CodeInternal         = "internal_error"
)

// AppError carries a stable code for the HTTP layer, a message that is safe
// to show to the caller and the underlying cause for logs.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrUnauthorized = func(err error) *AppError {
		return &AppError{Code: CodeUnauthorized, Message: "Unauthorized", Err: err}
	}
	ErrBadRequest = func(message string) *AppError {
		return &AppError{Code: CodeBadRequest, Message: message}
	}
	ErrFileTooLarge = func(limit int64) *AppError {
		return &AppError{Code: CodeFileTooLarge, Message: fmt.Sprintf("File exceeds the %d byte limit", limit)}
	}
	ErrUnsupportedMedia = func(detected string) *AppError {
		return &AppError{Code: CodeUnsupportedMedia, Message: fmt.Sprintf("Unsupported file type: %s", detected)}
	}
	ErrConfiguration = func(err error) *AppError {
		return &AppError{Code: CodeConfiguration, Message: "Media service credentials not found", Err: err}
	}
	ErrUpstream = func(err error) *AppError {
		return &AppError{Code: CodeUpstream, Message: "Error uploading media", Err: err}
	}
	ErrNotFound = func(err error) *AppError {
		return &AppError{Code: CodeNotFound, Message: "Video not found", Err: err}
	}
	ErrService = func(err error) *AppError {
		return &AppError{Code: CodeService, Message: "Metadata store unavailable", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)

// IsCode reports whether err (or anything it wraps) is an AppError with code.
func IsCode(err error, code string) bool {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
