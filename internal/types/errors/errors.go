package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal    = errors.New("database internal error")
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")

	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")
	ErrForbidden        = errors.New("access denied")

	ErrBadPassword = errors.New("bad password")
	ErrBadID       = errors.New("bad id")

	ErrOutOfStock          = errors.New("product is out of stock")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrEmptyCart           = errors.New("shopping cart is empty")
	ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")
	ErrNotOrderOwner       = errors.New("order belongs to another user")
	ErrInvalidOrderStatus  = errors.New("invalid order status")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

// StockLimitError - отказ по превышению потолка остатка,
// зафиксированного при добавлении товара в корзину
type StockLimitError struct {
	Ceiling int
	Unit    string
}

func (e *StockLimitError) Error() string {
	unit := e.Unit
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("only %d %s available in stock", e.Ceiling, unit)
}

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}

// StockLimitResponse - тело ответа 409 при отказе по остаткам
type StockLimitResponse struct {
	Message string `json:"message"`
	Ceiling int    `json:"ceiling"`
	Unit    string `json:"unit"`
}

// SendStockLimitTo отправляет клиенту структурированный отказ по остаткам
func SendStockLimitTo(w http.ResponseWriter, sle *StockLimitError, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	resp := StockLimitResponse{
		Message: sle.Error(),
		Ceiling: sle.Ceiling,
		Unit:    sle.Unit,
	}
	if errEncode := json.NewEncoder(w).Encode(resp); errEncode != nil {
		logger.Error(errEncode)
	}
}
