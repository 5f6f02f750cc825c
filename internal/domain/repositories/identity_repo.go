package repositories

import "context"

// IdentityVerifier resolves a session token to a stable user id.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
