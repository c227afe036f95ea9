package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type Handler struct {
	service AnalyticsService
	logger  *zap.SugaredLogger
}

func NewHandler(service AnalyticsService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) GetTopDemand(w http.ResponseWriter, r *http.Request) {
	topN := 10 // По умолчанию
	if topParam := r.URL.Query().Get("top"); topParam != "" {
		if n, err := strconv.Atoi(topParam); err == nil && n > 0 {
			topN = n
		}
	}

	productIDs, err := h.service.GetTopProducts(r.Context(), topN)
	if err != nil {
		h.logger.Errorf("Failed to get top demand products: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if len(productIDs) == 0 {
		productIDs = []string{} // Пустой массив вместо null
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(productIDs); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
