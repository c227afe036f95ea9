package product

// CreateProduct - форма для создания товара
type CreateProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	FarmerID    string `json:"farmer_id"`
}

// ChangeProduct - форма для частичного обновления товара
// Указатели, чтобы отличать "не передано" от нулевого значения
type ChangeProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int64 `json:"price"`
	Quantity    *int   `json:"quantity"`
	Unit        string `json:"unit"`
}
