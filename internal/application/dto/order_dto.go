package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido. OrderCode ausente se
// genera en el use case.
type CreateOrderRequest struct {
	OrderCode  *string `json:"order_code"`
	TableID    *string `json:"table_id" validate:"omitempty,uuid"`
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	CreatedBy  *string `json:"created_by" validate:"omitempty,uuid"`
	Status     *string `json:"status"`
	IsTakeaway *bool   `json:"is_takeaway"`
}

// UpdateOrderRequest actualización parcial de un pedido.
type UpdateOrderRequest struct {
	TableID    *string `json:"table_id"`
	CustomerID *string `json:"customer_id"`
	Status     *string `json:"status"`
	IsTakeaway *bool   `json:"is_takeaway"`
}

// UpdateOrderStatusRequest entrada para cambiar solo el estado del pedido
// (vista de cocina).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,max=32"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID         string    `json:"id"`
	OrderCode  *string   `json:"order_code"`
	TableID    *string   `json:"table_id"`
	CustomerID *string   `json:"customer_id"`
	CreatedBy  *string   `json:"created_by"`
	Status     string    `json:"status"`
	IsTakeaway bool      `json:"is_takeaway"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateOrderItemRequest entrada para añadir una línea a un pedido.
type CreateOrderItemRequest struct {
	OrderID    string           `json:"order_id" validate:"required,uuid"`
	MenuItemID string           `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int              `json:"quantity" validate:"required,min=1"`
	UnitPrice  decimal.Decimal  `json:"unit_price" validate:"required"`
	TaxRate    *decimal.Decimal `json:"tax_rate"`
	Notes      *string          `json:"notes"`
	Status     *string          `json:"status"`
}

// UpdateOrderItemRequest actualización parcial de una línea de pedido.
type UpdateOrderItemRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
	Notes     *string          `json:"notes"`
	Status    *string          `json:"status"`
}

// OrderItemResponse salida de una línea de pedido.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	MenuItemID string          `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Notes      *string         `json:"notes"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateKitchenTicketRequest entrada para crear una comanda de cocina.
type CreateKitchenTicketRequest struct {
	OrderID  *string `json:"order_id" validate:"omitempty,uuid"`
	Printed  *bool   `json:"printed"`
	Priority *int    `json:"priority"`
}

// UpdateKitchenTicketRequest actualización parcial de una comanda.
type UpdateKitchenTicketRequest struct {
	Printed  *bool `json:"printed"`
	Priority *int  `json:"priority"`
}

// KitchenTicketResponse salida de una comanda.
type KitchenTicketResponse struct {
	ID        string    `json:"id"`
	OrderID   *string   `json:"order_id"`
	Printed   bool      `json:"printed"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}
