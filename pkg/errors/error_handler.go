package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusFor maps an error code to the HTTP status it is reported with.
func StatusFor(code string) int {
	switch code {
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeBadRequest:
		return fiber.StatusBadRequest
	case CodeFileTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case CodeUnsupportedMedia:
		return fiber.StatusUnsupportedMediaType
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	if stderrors.As(err, &ae) {
		status := StatusFor(ae.Code)
		if ae.Err != nil {
			fields := []zap.Field{zap.String("code", ae.Code), zap.Error(ae.Err), zap.String("path", c.Path())}
			if status >= fiber.StatusInternalServerError {
				log.Error("request failed", fields...)
			} else {
				log.Info("request rejected", fields...)
			}
		}

		// the cause stays in the logs, callers only get code + message
		return c.Status(status).JSON(fiber.Map{
			"error": ae.Message,
			"code":  ae.Code,
		})
	}

	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  codeForStatus(fe.Code),
		})
	}

	return HandleError(c, log, ErrInternal(err))
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusRequestEntityTooLarge:
		return CodeFileTooLarge
	case fiber.StatusUnsupportedMediaType:
		return CodeUnsupportedMedia
	}
	if status >= fiber.StatusInternalServerError {
		return CodeInternal
	}
	return CodeBadRequest
}
