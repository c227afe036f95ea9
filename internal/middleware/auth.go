package middleware

import (
	"context"
	"net/http"

	"farmtrade-main/internal/session"
	myErr "farmtrade-main/internal/types/errors"

	"go.uber.org/zap"
)

type SessKey string

var sessKey SessKey = "sessionKey"

func Auth(sm session.SessionRepo, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Проверка сессии пользователя
			sess, err := sm.CheckSession(r)
			if err != nil {
				myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			// Живая сессия продлевается при каждом запросе
			if err := sm.ExtendSession(r.Context(), sess.ID); err != nil {
				logger.Warnw("failed to extend session", "sessionID", sess.ID, "err", err)
			}

			// Добавляем сессию в контекст и передаем дальше
			ctx := ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только пользователей с указанной ролью.
// Вешается поверх Auth, сессия уже должна лежать в контексте
func RequireRole(role string, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok || sess.Role != role {
				myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithSession(ctx context.Context, s *session.Session) context.Context {
	// создаем новый контекст с нашим ключом и сессией
	return context.WithValue(ctx, sessKey, s)
}

// GetSessionFromContext достает сессию, положенную Auth-мидлварью
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessKey).(*session.Session)
	return s, ok
}
