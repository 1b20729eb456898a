package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden que requieren atención de cocina.
var KitchenOrderStatuses = []string{"pending", "confirmed", "seated"}

// Order representa un pedido (en mesa o para llevar). Borrado físico.
type Order struct {
	ID         string
	OrderCode  *string // único; se genera si el caller no lo envía
	TableID    *string
	CustomerID *string
	CreatedBy  *string
	Status     string // pending, confirmed, seated, served, closed, cancelled
	IsTakeaway bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem es una línea del pedido con el precio capturado al momento de ordenar.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   int
	UnitPrice  decimal.Decimal
	TaxRate    decimal.Decimal
	Notes      *string
	Status     string // pending, preparing, ready, delivered
	CreatedAt  time.Time
}

// KitchenTicket es la comanda impresa/enviada a cocina para una orden.
type KitchenTicket struct {
	ID        string
	OrderID   *string
	Printed   bool
	Priority  int
	CreatedAt time.Time
}
