package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"farmtrade-main/internal/contextutil"
	"farmtrade-main/internal/order"
	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/order"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// OrderHandler ручки заказов
type OrderHandler struct {
	Logger    *zap.SugaredLogger
	OrderRepo order.OrderRepo
}

func NewOrderHandler(log *zap.SugaredLogger, or order.OrderRepo) *OrderHandler {
	return &OrderHandler{
		Logger:    log,
		OrderRepo: or,
	}
}

// GetMy - GET /orders/my (ритейлер)
func (h *OrderHandler) GetMy(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	orders, err := h.OrderRepo.GetByRetailerID(sess.UserID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeOrders(w, orders)
}

// GetForFarmer - GET /orders/farmer (фермер)
// Заказы, в которых есть хотя бы один товар фермера
func (h *OrderHandler) GetForFarmer(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	orders, err := h.OrderRepo.GetByFarmerID(sess.UserID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeOrders(w, orders)
}

// GetByID - GET /order/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	o, err := h.OrderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// Чужой заказ видит только админ
	if o.RetailerID != sess.UserID && sess.Role != "ADMIN" {
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(o); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// Cancel - POST /order/{id}/cancel (ритейлер-владелец)
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	o, err := h.OrderRepo.Cancel(id, sess.UserID)
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		case errors.Is(err, myErr.ErrNotOrderOwner):
			myErr.SendErrorTo(w, err, http.StatusForbidden, h.Logger)
		case errors.Is(err, myErr.ErrOrderNotCancellable):
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	h.Logger.Infof("user %s cancelled order %s", sess.UserID, id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(o); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// UpdateStatus - PUT /order/{id}/status (фермер)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var form types.UpdateStatus
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	o, err := h.OrderRepo.UpdateStatus(id, sess.UserID, form.Status)
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		case errors.Is(err, myErr.ErrNotOrderOwner):
			myErr.SendErrorTo(w, err, http.StatusForbidden, h.Logger)
		case errors.Is(err, myErr.ErrInvalidOrderStatus):
			myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	h.Logger.Infof("farmer %s set order %s status to %s", sess.UserID, id, form.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(o); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

func (h *OrderHandler) writeOrders(w http.ResponseWriter, orders []order.Order) {
	if orders == nil {
		orders = []order.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
