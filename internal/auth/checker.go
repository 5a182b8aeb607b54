package auth

import (
	"context"
	"net/http"
	"strings"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves the acting user of a session token.
type Checker interface {
	UserID(ctx context.Context, token string) (string, error)
}

// LoginTestChecker is an in-memory Checker for tests and local development.
type LoginTestChecker struct {
	Sessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]string{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}

// TokenFromRequest reads the session token from the Authorization header,
// with or without the Bearer scheme.
func TokenFromRequest(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > len("bearer ") && strings.EqualFold(header[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}
	return header
}
