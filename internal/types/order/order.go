package order

// ItemRequest - позиция заказа при оформлении: товар и количество
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrder - форма оформления заказа
type CreateOrder struct {
	Items []ItemRequest `json:"items"`
}

// UpdateStatus - форма смены статуса заказа фермером
type UpdateStatus struct {
	Status string `json:"status"`
}
