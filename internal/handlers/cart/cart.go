package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"farmtrade-main/internal/cart"
	"farmtrade-main/internal/contextutil"
	"farmtrade-main/internal/kafka"
	"farmtrade-main/internal/middleware"
	"farmtrade-main/internal/order"
	"farmtrade-main/internal/product"
	myErr "farmtrade-main/internal/types/errors"
	"farmtrade-main/internal/user"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CartHandler ручки корзины покупателя
type CartHandler struct {
	Logger        *zap.SugaredLogger
	CartRepo      cart.CartRepo
	ProductRepo   product.ProductRepo
	OrderRepo     order.OrderRepo
	EventProducer kafka.EventProducer
}

// NewCartHandler конструктор
func NewCartHandler(
	log *zap.SugaredLogger,
	cr cart.CartRepo,
	pr product.ProductRepo,
	or order.OrderRepo,
	ep kafka.EventProducer,
) *CartHandler {
	return &CartHandler{
		Logger:        log,
		CartRepo:      cr,
		ProductRepo:   pr,
		OrderRepo:     or,
		EventProducer: ep,
	}
}

// GetCart - GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	c, err := h.CartRepo.Load(r.Context(), sess.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, c, http.StatusOK)
}

// AddItem - POST /cart/item/{productID}
// Добавляет товар в корзину или увеличивает количество на единицу
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if _, err := uuid.Parse(productID); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ProductRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
	if !p.IsActive {
		myErr.SendErrorTo(w, myErr.ErrNotFound, http.StatusNotFound, h.Logger)
		return
	}

	c, err := h.CartRepo.Load(r.Context(), sess.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if err := c.AddItem(p); err != nil {
		h.sendCartRejection(w, err)
		return
	}

	if err := h.CartRepo.Save(r.Context(), sess.ID, c); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// После успешного добавления — отправляем событие "addToCart" в Kafka
	event := kafka.Event{
		UserID:     sess.UserID,
		Type:       kafka.EventTypeAddToCart,
		ProductIDs: []string{productID},
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send addToCart event: %v", err)
	}

	h.Logger.Infof("added product %s to cart of session %s", productID, sess.ID)
	h.writeCart(w, c, http.StatusCreated)
}

// UpdateItemRequest - тело запроса смены количества позиции
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem - PUT /cart/item/{productID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if _, err := uuid.Parse(productID); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var form UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	c, err := h.CartRepo.Load(r.Context(), sess.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if err := c.UpdateQuantity(productID, form.Quantity); err != nil {
		h.sendCartRejection(w, err)
		return
	}

	if err := h.CartRepo.Save(r.Context(), sess.ID, c); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, c, http.StatusOK)
}

// RemoveItem - DELETE /cart/item/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if _, err := uuid.Parse(productID); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	c, err := h.CartRepo.Load(r.Context(), sess.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	c.RemoveItem(productID)

	if err := h.CartRepo.Save(r.Context(), sess.ID, c); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, c, http.StatusOK)
}

// Clear - DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	if err := h.CartRepo.Delete(r.Context(), sess.ID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, cart.NewCart(), http.StatusOK)
}

// Checkout - POST /cart/checkout
// Оформляет заказ из текущей корзины, при успехе корзина очищается.
// Остатки окончательно проверяются на стороне заказа, потолки позиций
// корзины тут уже не авторитетны
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	// Заказ оформляет только ритейлер, роут продублирован RequireRole
	if sess.Role != user.RoleRetailer {
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
		return
	}

	c, err := h.CartRepo.Load(r.Context(), sess.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if c.IsEmpty() {
		myErr.SendErrorTo(w, myErr.ErrEmptyCart, http.StatusBadRequest, h.Logger)
		return
	}

	newOrder, err := h.OrderRepo.Create(sess.UserID, c.OrderItems())
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrInsufficientStock):
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
		case errors.Is(err, myErr.ErrNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	// Заказ оформлен, корзина больше не нужна
	if err := h.CartRepo.Delete(r.Context(), sess.ID); err != nil {
		h.Logger.Warnw("failed to clear cart after checkout", "sessionID", sess.ID, "err", err)
		// продолжаем, но логируем
	}

	// После успешной покупки — отправляем событие "purchase" в Kafka
	productIDs := make([]string, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	event := kafka.Event{
		UserID:     sess.UserID,
		Type:       kafka.EventTypePurchase,
		ProductIDs: productIDs,
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send purchase event: %v", err)
	}

	h.Logger.Infof("user %s placed order %s for total %d", sess.UserID, newOrder.ID, newOrder.TotalAmount)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(newOrder); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// sendCartRejection переводит типизированный отказ корзины в HTTP-ответ
func (h *CartHandler) sendCartRejection(w http.ResponseWriter, err error) {
	var sle *myErr.StockLimitError
	if errors.As(err, &sle) {
		middleware.ObserveCartRejection("stock_limit")
		myErr.SendStockLimitTo(w, sle, h.Logger)
		return
	}
	if errors.Is(err, myErr.ErrOutOfStock) {
		middleware.ObserveCartRejection("out_of_stock")
		myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
		return
	}

	myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, c *cart.Cart, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(c); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
