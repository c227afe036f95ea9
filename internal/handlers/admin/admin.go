package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"farmtrade-main/internal/order"
	"farmtrade-main/internal/product"
	myErr "farmtrade-main/internal/types/errors"
	"farmtrade-main/internal/user"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// AdminHandler ручки администратора, вешаются за RequireRole("ADMIN")
type AdminHandler struct {
	Logger      *zap.SugaredLogger
	UserRepo    user.UserRepo
	OrderRepo   order.OrderRepo
	ProductRepo product.ProductRepo
}

func NewAdminHandler(
	log *zap.SugaredLogger,
	ur user.UserRepo,
	or order.OrderRepo,
	pr product.ProductRepo,
) *AdminHandler {
	return &AdminHandler{
		Logger:      log,
		UserRepo:    ur,
		OrderRepo:   or,
		ProductRepo: pr,
	}
}

// ListUsers - GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.GetAll()
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if users == nil {
		users = []user.User{}
	}

	h.writeJSON(w, users)
}

// ListOrders - GET /admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderRepo.GetAll()
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if orders == nil {
		orders = []order.Order{}
	}

	h.writeJSON(w, orders)
}

// DeleteProduct - DELETE /admin/product/{id}
// Админ снимает с витрины любой товар, без проверки владельца
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.ProductRepo.Deactivate(id); err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("admin deactivated product %s", id)
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
