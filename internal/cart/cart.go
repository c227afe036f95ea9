package cart

import (
	"context"

	"farmtrade-main/internal/product"
	myErr "farmtrade-main/internal/types/errors"
	typesOrder "farmtrade-main/internal/types/order"
)

// CartLine - одна позиция корзины. StockCeiling - снимок остатка на складе,
// сделанный в момент добавления товара; дальше он не обновляется
type CartLine struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	StockCeiling int    `json:"stock_ceiling"`
}

// Cart - упорядоченный набор позиций с уникальными product_id.
// Total пересчитывается после каждой мутации, чтение всегда O(1)
type Cart struct {
	Lines []CartLine `json:"lines"`
	Total int64      `json:"total"`
}

func NewCart() *Cart {
	return &Cart{
		Lines: []CartLine{},
	}
}

// AddItem добавляет товар в корзину или увеличивает количество на 1.
// Отказы возвращаются типизированно: *StockLimitError при превышении
// потолка, ErrOutOfStock если товара нет на складе. Корзина при отказе
// не меняется
func (c *Cart) AddItem(p *product.Product) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID != p.ID {
			continue
		}

		if c.Lines[i].Quantity+1 > c.Lines[i].StockCeiling {
			return &myErr.StockLimitError{
				Ceiling: c.Lines[i].StockCeiling,
				Unit:    c.Lines[i].Unit,
			}
		}

		c.Lines[i].Quantity++
		c.recalcTotal()
		return nil
	}

	if p.Quantity < 1 {
		return myErr.ErrOutOfStock
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Unit:         p.Unit,
		Quantity:     1,
		StockCeiling: p.Quantity,
	})
	c.recalcTotal()

	return nil
}

// RemoveItem удаляет позицию из корзины, отсутствие позиции не ошибка
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.recalcTotal()
			return
		}
	}
}

// UpdateQuantity выставляет количество позиции.
// quantity < 1 и неизвестный productID игнорируются молча,
// превышение потолка возвращает *StockLimitError
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if quantity > c.Lines[i].StockCeiling {
			return &myErr.StockLimitError{
				Ceiling: c.Lines[i].StockCeiling,
				Unit:    c.Lines[i].Unit,
			}
		}

		c.Lines[i].Quantity = quantity
		c.recalcTotal()
		return nil
	}

	return nil
}

// Clear опустошает корзину
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.Total = 0
}

// OrderItems проецирует позиции корзины в форму оформления заказа
func (c *Cart) OrderItems() []typesOrder.ItemRequest {
	items := make([]typesOrder.ItemRequest, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, typesOrder.ItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) recalcTotal() {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	c.Total = total
}

// CartRepo интерфейс хранилища корзины, привязанного к сессии.
// Запись корзины живет столько же, сколько сессия пользователя
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart_repo.go -package=mocks
type CartRepo interface {
	// Load восстанавливает корзину сессии, при отсутствии или порче
	// снапшота возвращает пустую корзину
	Load(ctx context.Context, sessionID string) (*Cart, error)
	// Save сохраняет корзину сессии
	Save(ctx context.Context, sessionID string, c *Cart) error
	// Delete удаляет корзину сессии
	Delete(ctx context.Context, sessionID string) error
}
