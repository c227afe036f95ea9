package etl

import (
	"database/sql"

	"farmtrade-main/internal/product"

	"go.uber.org/zap"
	"golang.org/x/net/context"
)

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

// ExtractNew - достает товары, которые еще не попали в полнотекстовый поиск
// Возвращает массив товаров и error
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]product.Product, error) {
	query :=
		`
		SELECT id, name, description, unit, farmer_id, created_at
		FROM products
		WHERE searching = FALSE AND is_active = TRUE
		`

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))

		return nil, err
	}
	defer rows.Close()

	var result []product.Product

	for rows.Next() {
		var p product.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Unit, &p.FarmerID, &p.CreatedAt)
		if err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))

			return nil, err
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
