package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"farmtrade-main/internal/contextutil"
	elasticService "farmtrade-main/internal/elastic_search"
	"farmtrade-main/internal/kafka"
	"farmtrade-main/internal/product"
	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/product"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ProductHandler ручки каталога товаров
type ProductHandler struct {
	Logger        *zap.SugaredLogger
	ProductRepo   product.ProductRepo
	Elastic       *elasticService.ElasticService
	EventProducer kafka.EventProducer
}

func NewProductHandler(
	log *zap.SugaredLogger,
	pr product.ProductRepo,
	es *elasticService.ElasticService,
	ep kafka.EventProducer,
) *ProductHandler {
	return &ProductHandler{
		Logger:        log,
		ProductRepo:   pr,
		Elastic:       es,
		EventProducer: ep,
	}
}

// Create - POST /product (только фермер)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	var form types.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}
	// Товар всегда принадлежит создавшему его фермеру
	form.FarmerID = sess.UserID

	if form.Name == "" || form.Price <= 0 || form.Quantity < 0 {
		myErr.SendErrorTo(w, errors.New("name, positive price and non-negative quantity are required"),
			http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ProductRepo.Create(form)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("farmer %s created product %s", sess.UserID, p.ID)
	h.writeJSON(w, p, http.StatusCreated)
}

// GetByID - GET /product/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ProductRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// Просмотр карточки товара интересен аналитике
	if userID, ok := contextutil.GetUserIDFromContext(r.Context()); ok {
		event := kafka.Event{
			UserID:     userID,
			Type:       kafka.EventTypeView,
			ProductIDs: []string{id},
			Timestamp:  time.Now(),
		}
		if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to send view event: %v", err)
		}
	}

	h.writeJSON(w, p, http.StatusOK)
}

// GetAll - GET /products
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductRepo.GetAll()
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if products == nil {
		products = []product.Product{}
	}

	h.writeJSON(w, products, http.StatusOK)
}

// GetMy - GET /products/my (только фермер)
func (h *ProductHandler) GetMy(w http.ResponseWriter, r *http.Request) {
	sess, ok := contextutil.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	products, err := h.ProductRepo.GetByFarmerID(sess.UserID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if products == nil {
		products = []product.Product{}
	}

	h.writeJSON(w, products, http.StatusOK)
}

// Update - PUT /product/{id} (только фермер-владелец)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	existing, err := h.ProductRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
	if existing.FarmerID != sess.UserID {
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
		return
	}

	var form types.ChangeProduct
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ProductRepo.Update(id, form)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeJSON(w, p, http.StatusOK)
}

// Delete - DELETE /product/{id} (только фермер-владелец)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	existing, err := h.ProductRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
	if existing.FarmerID != sess.UserID {
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
		return
	}

	if err := h.ProductRepo.Deactivate(id); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Search - GET /products/search?q=
// Ищет через Elasticsearch, при его недоступности откатывается на Postgres
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		myErr.SendErrorTo(w, errors.New("query parameter q is required"), http.StatusBadRequest, h.Logger)
		return
	}

	var products []product.Product

	docs, err := h.Elastic.SearchByName(r.Context(), query)
	if err != nil {
		h.Logger.Warnf("elasticsearch unavailable, falling back to db search: %v", err)
		products, err = h.ProductRepo.Search(query)
		if err != nil {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
			return
		}
	} else {
		ids := make([]string, 0, len(docs))
		for _, doc := range docs {
			ids = append(ids, doc.ID)
		}
		products, err = h.ProductRepo.GetByIDs(ids)
		if err != nil {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
			return
		}
	}

	if products == nil {
		products = []product.Product{}
	}

	// Поисковые запросы авторизованных пользователей идут в аналитику
	if userID, ok := contextutil.GetUserIDFromContext(r.Context()); ok && len(products) > 0 {
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		event := kafka.Event{
			UserID:     userID,
			Type:       kafka.EventTypeSearch,
			ProductIDs: ids,
			Timestamp:  time.Now(),
		}
		if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to send search event: %v", err)
		}
	}

	h.writeJSON(w, products, http.StatusOK)
}

func (h *ProductHandler) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
