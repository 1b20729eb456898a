package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es la cuenta emitida para una orden. Los montos llegan ya
// calculados del caller; aquí no se recomputan totales.
type Invoice struct {
	ID             string
	InvoiceNumber  *string // único; se genera si el caller no lo envía
	OrderID        *string
	Subtotal       decimal.Decimal
	TaxTotal       decimal.Decimal
	TipAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	CreatedBy      *string
	CreatedAt      time.Time
	Paid           bool
}

// Payment es un pago aplicado a una factura.
type Payment struct {
	ID             string
	InvoiceID      string
	Method         string // cash, card, transfer...
	Amount         decimal.Decimal
	TransactionRef *string
	PaidAt         time.Time
	CreatedBy      *string
}
