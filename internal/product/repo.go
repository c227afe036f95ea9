package product

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/product"

	"go.uber.org/zap"
)

const productColumns = `id, name, description, price, quantity, unit, farmer_id, is_active, created_at`

type ProductDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewProductDBRepository(db *sql.DB, l *zap.SugaredLogger) *ProductDBRepository {
	return &ProductDBRepository{
		DB:     db,
		Logger: l,
	}
}

func (pr *ProductDBRepository) Create(p types.CreateProduct) (*Product, error) {
	var newProduct Product

	query := `
	INSERT INTO products (
		name,
		description,
		price,
		quantity,
		unit,
		farmer_id
	) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + productColumns

	err := pr.DB.QueryRow(
		query,
		p.Name,
		p.Description,
		p.Price,
		p.Quantity,
		p.Unit,
		p.FarmerID,
	).Scan(
		&newProduct.ID,
		&newProduct.Name,
		&newProduct.Description,
		&newProduct.Price,
		&newProduct.Quantity,
		&newProduct.Unit,
		&newProduct.FarmerID,
		&newProduct.IsActive,
		&newProduct.CreatedAt,
	)

	if err != nil {
		pr.Logger.Errorf("Ошибка при создании товара: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return &newProduct, nil
}

func (pr *ProductDBRepository) GetByID(id string) (*Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE id = $1
	`

	p := &Product{}
	err := pr.DB.QueryRow(query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Quantity, &p.Unit, &p.FarmerID,
		&p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		pr.Logger.Errorf("Ошибка при получении товара %v: %v", id, err)
		return nil, myErr.ErrDBInternal
	}

	return p, nil
}

func (pr *ProductDBRepository) GetAll() ([]Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE is_active = TRUE
	ORDER BY created_at DESC
	`

	return pr.queryProducts(query)
}

func (pr *ProductDBRepository) GetByFarmerID(farmerID string) ([]Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE farmer_id = $1
	ORDER BY created_at DESC
	`

	return pr.queryProducts(query, farmerID)
}

func (pr *ProductDBRepository) Update(id string, updateProduct types.ChangeProduct) (*Product, error) {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	// Динамически добавляем поля в обновление
	if updateProduct.Name != "" {
		fields = append(fields, "name = $"+strconv.Itoa(argID))
		args = append(args, updateProduct.Name)
		argID++
	}
	if updateProduct.Description != "" {
		fields = append(fields, "description = $"+strconv.Itoa(argID))
		args = append(args, updateProduct.Description)
		argID++
	}
	if updateProduct.Price != nil {
		fields = append(fields, "price = $"+strconv.Itoa(argID))
		args = append(args, *updateProduct.Price)
		argID++
	}
	if updateProduct.Quantity != nil {
		fields = append(fields, "quantity = $"+strconv.Itoa(argID))
		args = append(args, *updateProduct.Quantity)
		argID++
	}
	if updateProduct.Unit != "" {
		fields = append(fields, "unit = $"+strconv.Itoa(argID))
		args = append(args, updateProduct.Unit)
		argID++
	}

	if len(fields) == 0 {
		return pr.GetByID(id) // Если ничего не обновляется, просто вернуть текущие данные
	}

	// Обновленный товар должен заново попасть в индекс поиска
	fields = append(fields, "searching = FALSE")

	query := "UPDATE products SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argID) // nolint:gosec
	args = append(args, id)

	res, err := pr.DB.Exec(query, args...)
	if err != nil {
		pr.Logger.Errorf("Ошибка при обновлении товара: %v", err)
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		pr.Logger.Errorf("Не удалось получить количество обновлённых строк: %v", err)
		return nil, myErr.ErrDBInternal
	}

	if rowsAffected == 0 {
		return nil, myErr.ErrNotFound
	}

	return pr.GetByID(id)
}

func (pr *ProductDBRepository) Deactivate(id string) error {
	query := `
	UPDATE products
	SET is_active = FALSE
	WHERE id = $1
	`

	res, err := pr.DB.Exec(query, id)
	if err != nil {
		pr.Logger.Errorf("Ошибка при снятии товара с продажи: %v", err)
		return myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return myErr.ErrNotFound
	}

	return nil
}

func (pr *ProductDBRepository) Search(query string) ([]Product, error) {
	query = strings.ToLower(query)
	sqlQuery := `
	SELECT ` + productColumns + `,
		(LENGTH(name) - LENGTH(REPLACE(LOWER(name), $1, ''))) AS score
	FROM products
	WHERE is_active = TRUE
	ORDER BY score DESC
	LIMIT 10
	`

	rows, err := pr.DB.Query(sqlQuery, query)
	if err != nil {
		pr.Logger.Errorf("Ошибка при поиске товаров: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var score int
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Quantity, &p.Unit, &p.FarmerID,
			&p.IsActive, &p.CreatedAt, &score,
		)
		if err != nil {
			return nil, myErr.ErrDBInternal
		}
		products = append(products, p)
	}

	return products, nil
}

func (pr *ProductDBRepository) GetByIDs(ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
	SELECT `+productColumns+`
	FROM products
	WHERE id IN (%s)
	`, strings.Join(placeholders, ", "))

	return pr.queryProducts(query, args...)
}

func (pr *ProductDBRepository) queryProducts(query string, args ...interface{}) ([]Product, error) {
	rows, err := pr.DB.Query(query, args...)
	if err != nil {
		pr.Logger.Errorf("Ошибка при получении товаров: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Quantity, &p.Unit, &p.FarmerID,
			&p.IsActive, &p.CreatedAt,
		)
		if err != nil {
			return nil, myErr.ErrDBInternal
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, myErr.ErrDBInternal
	}

	return products, nil
}
