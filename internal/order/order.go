package order

import (
	"time"

	types "farmtrade-main/internal/types/order"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// ValidStatus проверяет, что строка является известным статусом заказа
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem - позиция заказа с ценой, зафиксированной на момент оформления
type OrderItem struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
}

// Order структура заказа ритейлера
type Order struct {
	ID          string      `json:"id"`
	RetailerID  string      `json:"retailer_id"`
	OrderDate   time.Time   `json:"order_date"`
	Status      Status      `json:"status"`
	TotalAmount int64       `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

// OrderRepo интерфейс для работы репозитория заказов
//
//go:generate mockgen -source=order.go -destination=../mocks/mock_order_repo.go -package=mocks
type OrderRepo interface {
	// Create оформляет заказ: проверяет и списывает остатки в одной
	// транзакции. Проверка остатков здесь авторитетная, клиентский
	// потолок корзины лишь подсказка
	Create(retailerID string, items []types.ItemRequest) (*Order, error)
	// GetByID возвращает заказ с позициями
	GetByID(id string) (*Order, error)
	// GetByRetailerID возвращает заказы ритейлера
	GetByRetailerID(retailerID string) ([]Order, error)
	// GetByFarmerID возвращает заказы, где есть товары фермера
	GetByFarmerID(farmerID string) ([]Order, error)
	// GetAll возвращает все заказы (админка)
	GetAll() ([]Order, error)
	// Cancel отменяет PENDING-заказ его владельцем и возвращает остатки
	Cancel(orderID, retailerID string) (*Order, error)
	// UpdateStatus меняет статус заказа фермером, чей товар есть в заказе
	UpdateStatus(orderID, farmerID, status string) (*Order, error)
}
