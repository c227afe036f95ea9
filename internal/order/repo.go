package order

import (
	"database/sql"
	"errors"

	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/order"

	"go.uber.org/zap"
)

type OrderDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewOrderDBRepository(db *sql.DB, l *zap.SugaredLogger) *OrderDBRepository {
	return &OrderDBRepository{
		DB:     db,
		Logger: l,
	}
}

// Create оформляет заказ одной транзакцией: блокирует строки товаров,
// проверяет остатки, списывает их и вставляет заказ с позициями
func (or *OrderDBRepository) Create(retailerID string, items []types.ItemRequest) (*Order, error) {
	if len(items) == 0 {
		return nil, myErr.ErrEmptyCart
	}

	tx, err := or.DB.Begin()
	if err != nil {
		or.Logger.Errorf("Ошибка при открытии транзакции: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	newOrder := &Order{
		RetailerID: retailerID,
		Status:     StatusPending,
		Items:      make([]OrderItem, 0, len(items)),
	}

	for _, item := range items {
		var name string
		var price int64
		var stock int

		err := tx.QueryRow(`
		SELECT name, price, quantity FROM products
		WHERE id = $1 AND is_active = TRUE
		FOR UPDATE
		`, item.ProductID).Scan(&name, &price, &stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, myErr.ErrNotFound
			}
			or.Logger.Errorf("Ошибка при блокировке товара %v: %v", item.ProductID, err)
			return nil, myErr.ErrDBInternal
		}

		if stock < item.Quantity {
			return nil, myErr.ErrInsufficientStock
		}

		_, err = tx.Exec(`
		UPDATE products SET quantity = quantity - $1 WHERE id = $2
		`, item.Quantity, item.ProductID)
		if err != nil {
			or.Logger.Errorf("Ошибка при списании остатков товара %v: %v", item.ProductID, err)
			return nil, myErr.ErrDBInternal
		}

		newOrder.Items = append(newOrder.Items, OrderItem{
			ProductID:    item.ProductID,
			Name:         name,
			Quantity:     item.Quantity,
			PricePerUnit: price,
		})
		newOrder.TotalAmount += price * int64(item.Quantity)
	}

	err = tx.QueryRow(`
	INSERT INTO orders (retailer_id, status, total_amount)
	VALUES ($1, $2, $3)
	RETURNING id, order_date
	`, newOrder.RetailerID, newOrder.Status, newOrder.TotalAmount).
		Scan(&newOrder.ID, &newOrder.OrderDate)
	if err != nil {
		or.Logger.Errorf("Ошибка при создании заказа: %v", err)
		return nil, myErr.ErrDBInternal
	}

	for _, item := range newOrder.Items {
		_, err = tx.Exec(`
		INSERT INTO order_items (order_id, product_id, name, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4, $5)
		`, newOrder.ID, item.ProductID, item.Name, item.Quantity, item.PricePerUnit)
		if err != nil {
			or.Logger.Errorf("Ошибка при добавлении позиции заказа: %v", err)
			return nil, myErr.ErrDBInternal
		}
	}

	if err := tx.Commit(); err != nil {
		or.Logger.Errorf("Ошибка при коммите заказа: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return newOrder, nil
}

func (or *OrderDBRepository) GetByID(id string) (*Order, error) {
	o := &Order{}
	err := or.DB.QueryRow(`
	SELECT id, retailer_id, order_date, status, total_amount
	FROM orders
	WHERE id = $1
	`, id).Scan(&o.ID, &o.RetailerID, &o.OrderDate, &o.Status, &o.TotalAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		or.Logger.Errorf("Ошибка при получении заказа %v: %v", id, err)
		return nil, myErr.ErrDBInternal
	}

	items, err := or.getItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (or *OrderDBRepository) GetByRetailerID(retailerID string) ([]Order, error) {
	query := `
	SELECT id, retailer_id, order_date, status, total_amount
	FROM orders
	WHERE retailer_id = $1
	ORDER BY order_date DESC
	`

	return or.queryOrders(query, retailerID)
}

func (or *OrderDBRepository) GetByFarmerID(farmerID string) ([]Order, error) {
	query := `
	SELECT DISTINCT o.id, o.retailer_id, o.order_date, o.status, o.total_amount
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	JOIN products p ON p.id = oi.product_id
	WHERE p.farmer_id = $1
	ORDER BY o.order_date DESC
	`

	return or.queryOrders(query, farmerID)
}

func (or *OrderDBRepository) GetAll() ([]Order, error) {
	query := `
	SELECT id, retailer_id, order_date, status, total_amount
	FROM orders
	ORDER BY order_date DESC
	`

	return or.queryOrders(query)
}

// Cancel отменяет PENDING-заказ владельца и возвращает остатки на склад
func (or *OrderDBRepository) Cancel(orderID, retailerID string) (*Order, error) {
	tx, err := or.DB.Begin()
	if err != nil {
		or.Logger.Errorf("Ошибка при открытии транзакции: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	var ownerID string
	var status Status
	err = tx.QueryRow(`
	SELECT retailer_id, status FROM orders WHERE id = $1 FOR UPDATE
	`, orderID).Scan(&ownerID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		or.Logger.Errorf("Ошибка при блокировке заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	// Отменить заказ может только оформивший его ритейлер
	if ownerID != retailerID {
		return nil, myErr.ErrNotOrderOwner
	}
	if status != StatusPending {
		return nil, myErr.ErrOrderNotCancellable
	}

	_, err = tx.Exec(`
	UPDATE products p
	SET quantity = p.quantity + oi.quantity
	FROM order_items oi
	WHERE oi.order_id = $1 AND oi.product_id = p.id
	`, orderID)
	if err != nil {
		or.Logger.Errorf("Ошибка при возврате остатков заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	_, err = tx.Exec(`
	UPDATE orders SET status = $1 WHERE id = $2
	`, StatusCancelled, orderID)
	if err != nil {
		or.Logger.Errorf("Ошибка при отмене заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	if err := tx.Commit(); err != nil {
		or.Logger.Errorf("Ошибка при коммите отмены заказа: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return or.GetByID(orderID)
}

func (or *OrderDBRepository) UpdateStatus(orderID, farmerID, status string) (*Order, error) {
	if !ValidStatus(status) {
		return nil, myErr.ErrInvalidOrderStatus
	}

	// Статус меняет только фермер, чей товар есть в заказе
	var count int
	err := or.DB.QueryRow(`
	SELECT COUNT(*)
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id = $1 AND p.farmer_id = $2
	`, orderID, farmerID).Scan(&count)
	if err != nil {
		or.Logger.Errorf("Ошибка при проверке владельца товаров заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}
	if count == 0 {
		return nil, myErr.ErrNotOrderOwner
	}

	res, err := or.DB.Exec(`
	UPDATE orders SET status = $1 WHERE id = $2
	`, status, orderID)
	if err != nil {
		or.Logger.Errorf("Ошибка при смене статуса заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return nil, myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return nil, myErr.ErrNotFound
	}

	return or.GetByID(orderID)
}

func (or *OrderDBRepository) getItems(orderID string) ([]OrderItem, error) {
	rows, err := or.DB.Query(`
	SELECT product_id, name, quantity, price_per_unit
	FROM order_items
	WHERE order_id = $1
	`, orderID)
	if err != nil {
		or.Logger.Errorf("Ошибка при получении позиций заказа %v: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.PricePerUnit); err != nil {
			return nil, myErr.ErrDBInternal
		}
		items = append(items, item)
	}

	return items, nil
}

func (or *OrderDBRepository) queryOrders(query string, args ...interface{}) ([]Order, error) {
	rows, err := or.DB.Query(query, args...)
	if err != nil {
		or.Logger.Errorf("Ошибка при получении заказов: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.RetailerID, &o.OrderDate, &o.Status, &o.TotalAmount); err != nil {
			return nil, myErr.ErrDBInternal
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, myErr.ErrDBInternal
	}

	return orders, nil
}
