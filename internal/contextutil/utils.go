package contextutil

import (
	"context"

	"farmtrade-main/internal/middleware"
	"farmtrade-main/internal/session"
)

// GetUserIDFromContext извлекает userID из контекста
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.UserID, true
}

// GetSessionFromContext извлекает сессию целиком
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	return middleware.GetSessionFromContext(ctx)
}
