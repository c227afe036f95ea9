package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmtrade-main/internal/kafka"

	"github.com/stretchr/testify/require"
)

// fakeService подменяет AnalyticsService в тестах ручки.
type fakeService struct {
	top       []string
	lastLimit int
	returnErr error
}

func (f *fakeService) ProcessEvent(ctx context.Context, event kafka.Event) error {
	return nil
}

func (f *fakeService) GetTopProducts(ctx context.Context, limit int) ([]string, error) {
	f.lastLimit = limit
	return f.top, f.returnErr
}

func TestHandler_GetTopDemand(t *testing.T) {
	logger := zapTestLogger(t)

	t.Run("default limit", func(t *testing.T) {
		svc := &fakeService{top: []string{"prod-1", "prod-2"}}
		handler := NewHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/demand/top", nil)
		w := httptest.NewRecorder()

		handler.GetTopDemand(w, req)

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, 10, svc.lastLimit)

		var got []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, []string{"prod-1", "prod-2"}, got)
	})

	t.Run("custom limit", func(t *testing.T) {
		svc := &fakeService{}
		handler := NewHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/demand/top?top=3", nil)
		w := httptest.NewRecorder()

		handler.GetTopDemand(w, req)

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, 3, svc.lastLimit)

		// Пустой результат отдается пустым массивом, а не null
		var got []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{returnErr: errors.New("db down")}
		handler := NewHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/demand/top", nil)
		w := httptest.NewRecorder()

		handler.GetTopDemand(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
