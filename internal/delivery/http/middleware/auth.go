package middleware

import (
	"strings"

	"media-gallery/internal/domain/repositories"
	"media-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	userIDKey     = "user_id"
	sessionCookie = "__session"
)

// RequireAuth resolves the caller through the identity provider and rejects
// the request with 401 when that fails.
func RequireAuth(verifier repositories.IdentityVerifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := verifier.Verify(c.UserContext(), sessionToken(c))
		if err != nil || userID == "" {
			return errors.HandleError(c, log, errors.ErrUnauthorized(err))
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID is empty for unauthenticated requests.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}

func sessionToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return c.Cookies(sessionCookie)
}
