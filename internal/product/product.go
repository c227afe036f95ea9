package product

import (
	"time"

	types "farmtrade-main/internal/types/product"
)

// Product структура товара фермера
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // в минимальных единицах валюты
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	FarmerID    string    `json:"farmer_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRepo интерфейс для работы репозитория каталога товаров
//
//go:generate mockgen -source=product.go -destination=../mocks/mock_product_repo.go -package=mocks
type ProductRepo interface {
	// Create создает товар
	Create(p types.CreateProduct) (*Product, error)
	// GetByID возвращает товар по id
	GetByID(id string) (*Product, error)
	// GetAll возвращает все активные товары каталога
	GetAll() ([]Product, error)
	// GetByFarmerID возвращает товары конкретного фермера
	GetByFarmerID(farmerID string) ([]Product, error)
	// Update меняет поля товара с id по updateProduct
	Update(id string, updateProduct types.ChangeProduct) (*Product, error)
	// Deactivate снимает товар с продажи
	Deactivate(id string) error
	// Search ищет товары по имени (фолбэк без полнотекстового поиска)
	Search(query string) ([]Product, error)
	// GetByIDs возвращает товары по списку id (для выдачи поиска)
	GetByIDs(ids []string) ([]Product, error)
}
