package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmtrade-main/internal/mocks"
	"farmtrade-main/internal/session"
	"farmtrade-main/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()

	sess := &session.Session{
		ID:      "sess-1",
		UserID:  "user-1",
		Role:    user.RoleRetailer,
		EndTime: time.Now().Add(15 * time.Minute),
	}

	t.Run("valid session is extended and passed down", func(t *testing.T) {
		mockSessions.EXPECT().CheckSession(gomock.Any()).Return(sess, nil)
		mockSessions.EXPECT().ExtendSession(gomock.Any(), sess.ID).Return(nil)

		var seen *session.Session
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = GetSessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		Auth(mockSessions, logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, sess, seen)
	})

	t.Run("extend failure is not fatal", func(t *testing.T) {
		mockSessions.EXPECT().CheckSession(gomock.Any()).Return(sess, nil)
		mockSessions.EXPECT().ExtendSession(gomock.Any(), sess.ID).Return(errors.New("redis down"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		Auth(mockSessions, logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid session", func(t *testing.T) {
		mockSessions.EXPECT().CheckSession(gomock.Any()).Return(nil, errors.New("no token"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be reached without a session")
		})

		w := httptest.NewRecorder()
		Auth(mockSessions, logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role", func(t *testing.T) {
		sess := &session.Session{ID: "s", UserID: "u", Role: user.RoleRetailer}
		req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)
		req = req.WithContext(ContextWithSession(req.Context(), sess))
		w := httptest.NewRecorder()

		RequireRole(user.RoleRetailer, logger)(next).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		sess := &session.Session{ID: "s", UserID: "u", Role: user.RoleFarmer}
		req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)
		req = req.WithContext(ContextWithSession(req.Context(), sess))
		w := httptest.NewRecorder()

		RequireRole(user.RoleRetailer, logger)(next).ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no session in context", func(t *testing.T) {
		w := httptest.NewRecorder()

		RequireRole(user.RoleRetailer, logger)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/my", nil))

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
