package order

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/order"

	"go.uber.org/zap/zaptest"
)

func TestOrderDBRepository_Create(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := zaptest.NewLogger(t).Sugar()
	repo := NewOrderDBRepository(db, logger)

	orderDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful order", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT name, price, quantity FROM products\s+WHERE id = \$1 AND is_active = TRUE\s+FOR UPDATE`).
			WithArgs("prod-1").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity"}).
				AddRow("Carrots", 120, 10))

		mock.ExpectExec(`UPDATE products SET quantity = quantity - \$1 WHERE id = \$2`).
			WithArgs(3, "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(`INSERT INTO orders \(retailer_id, status, total_amount\)`).
			WithArgs("retailer-1", StatusPending, int64(360)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_date"}).
				AddRow("order-1", orderDate))

		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("order-1", "prod-1", "Carrots", 3, int64(120)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		o, err := repo.Create("retailer-1", []types.ItemRequest{{ProductID: "prod-1", Quantity: 3}})
		require.NoError(t, err)
		require.Equal(t, "order-1", o.ID)
		require.Equal(t, StatusPending, o.Status)
		require.Equal(t, int64(360), o.TotalAmount)
		require.Len(t, o.Items, 1)
		require.Equal(t, "Carrots", o.Items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient stock rolls back", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT name, price, quantity FROM products\s+WHERE id = \$1 AND is_active = TRUE\s+FOR UPDATE`).
			WithArgs("prod-1").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity"}).
				AddRow("Carrots", 120, 2))

		mock.ExpectRollback()

		_, err := repo.Create("retailer-1", []types.ItemRequest{{ProductID: "prod-1", Quantity: 3}})
		require.ErrorIs(t, err, myErr.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown product", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT name, price, quantity FROM products\s+WHERE id = \$1 AND is_active = TRUE\s+FOR UPDATE`).
			WithArgs("prod-404").
			WillReturnError(sql.ErrNoRows)

		mock.ExpectRollback()

		_, err := repo.Create("retailer-1", []types.ItemRequest{{ProductID: "prod-404", Quantity: 1}})
		require.ErrorIs(t, err, myErr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := repo.Create("retailer-1", nil)
		require.ErrorIs(t, err, myErr.ErrEmptyCart)
	})
}

func TestOrderDBRepository_Cancel(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := zaptest.NewLogger(t).Sugar()
	repo := NewOrderDBRepository(db, logger)

	orderDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending order of owner is cancelled with stock restore", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT retailer_id, status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"retailer_id", "status"}).
				AddRow("retailer-1", string(StatusPending)))

		mock.ExpectExec(`UPDATE products p\s+SET quantity = p.quantity \+ oi.quantity`).
			WithArgs("order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
			WithArgs(StatusCancelled, "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		mock.ExpectQuery(`SELECT id, retailer_id, order_date, status, total_amount\s+FROM orders\s+WHERE id = \$1`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "retailer_id", "order_date", "status", "total_amount"}).
				AddRow("order-1", "retailer-1", orderDate, string(StatusCancelled), 360))

		mock.ExpectQuery(`SELECT product_id, name, quantity, price_per_unit\s+FROM order_items\s+WHERE order_id = \$1`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price_per_unit"}).
				AddRow("prod-1", "Carrots", 3, 120))

		o, err := repo.Cancel("order-1", "retailer-1")
		require.NoError(t, err)
		require.Equal(t, StatusCancelled, o.Status)
		require.Len(t, o.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not the owner", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT retailer_id, status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"retailer_id", "status"}).
				AddRow("retailer-1", string(StatusPending)))

		mock.ExpectRollback()

		_, err := repo.Cancel("order-1", "retailer-2")
		require.ErrorIs(t, err, myErr.ErrNotOrderOwner)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already delivered", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT retailer_id, status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"retailer_id", "status"}).
				AddRow("retailer-1", string(StatusDelivered)))

		mock.ExpectRollback()

		_, err := repo.Cancel("order-1", "retailer-1")
		require.ErrorIs(t, err, myErr.ErrOrderNotCancellable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order not found", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT retailer_id, status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-404").
			WillReturnError(sql.ErrNoRows)

		mock.ExpectRollback()

		_, err := repo.Cancel("order-404", "retailer-1")
		require.ErrorIs(t, err, myErr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderDBRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := zaptest.NewLogger(t).Sugar()
	repo := NewOrderDBRepository(db, logger)

	orderDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("farmer with items in order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM order_items oi\s+JOIN products p ON p.id = oi.product_id`).
			WithArgs("order-1", "farmer-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
			WithArgs(StatusAccepted, "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(`SELECT id, retailer_id, order_date, status, total_amount\s+FROM orders\s+WHERE id = \$1`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "retailer_id", "order_date", "status", "total_amount"}).
				AddRow("order-1", "retailer-1", orderDate, string(StatusAccepted), 360))

		mock.ExpectQuery(`SELECT product_id, name, quantity, price_per_unit\s+FROM order_items\s+WHERE order_id = \$1`).
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price_per_unit"}))

		o, err := repo.UpdateStatus("order-1", "farmer-1", string(StatusAccepted))
		require.NoError(t, err)
		require.Equal(t, StatusAccepted, o.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("farmer without items in order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM order_items oi\s+JOIN products p ON p.id = oi.product_id`).
			WithArgs("order-1", "farmer-2").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.UpdateStatus("order-1", "farmer-2", string(StatusAccepted))
		require.ErrorIs(t, err, myErr.ErrNotOrderOwner)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := repo.UpdateStatus("order-1", "farmer-1", "SHIPPED_TO_MARS")
		require.ErrorIs(t, err, myErr.ErrInvalidOrderStatus)
	})
}

func TestOrderDBRepository_GetByFarmerID(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := zaptest.NewLogger(t).Sugar()
	repo := NewOrderDBRepository(db, logger)

	orderDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DISTINCT o.id, o.retailer_id, o.order_date, o.status, o.total_amount\s+FROM orders o`).
		WithArgs("farmer-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "retailer_id", "order_date", "status", "total_amount"}).
			AddRow("order-1", "retailer-1", orderDate, string(StatusPending), 360).
			AddRow("order-2", "retailer-2", orderDate, string(StatusDelivered), 120))

	orders, err := repo.GetByFarmerID("farmer-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "order-2", orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidStatus(string(StatusPending)))
	assert.True(t, ValidStatus(string(StatusAccepted)))
	assert.True(t, ValidStatus(string(StatusDelivered)))
	assert.True(t, ValidStatus(string(StatusCancelled)))
	assert.False(t, ValidStatus("UNKNOWN"))
}
