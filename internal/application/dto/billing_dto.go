package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para emitir una factura. Los montos llegan ya
// calculados; InvoiceNumber ausente se genera en el use case.
type CreateInvoiceRequest struct {
	InvoiceNumber  *string          `json:"invoice_number"`
	OrderID        *string          `json:"order_id" validate:"omitempty,uuid"`
	Subtotal       decimal.Decimal  `json:"subtotal" validate:"required"`
	TaxTotal       *decimal.Decimal `json:"tax_total"`
	TipAmount      *decimal.Decimal `json:"tip_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal  `json:"total" validate:"required"`
	CreatedBy      *string          `json:"created_by" validate:"omitempty,uuid"`
	Paid           *bool            `json:"paid"`
}

// UpdateInvoiceRequest actualización parcial de una factura.
type UpdateInvoiceRequest struct {
	Subtotal       *decimal.Decimal `json:"subtotal"`
	TaxTotal       *decimal.Decimal `json:"tax_total"`
	TipAmount      *decimal.Decimal `json:"tip_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	Total          *decimal.Decimal `json:"total"`
	Paid           *bool            `json:"paid"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  *string         `json:"invoice_number"`
	OrderID        *string         `json:"order_id"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	TipAmount      decimal.Decimal `json:"tip_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	CreatedBy      *string         `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	Paid           bool            `json:"paid"`
}

// CreatePaymentRequest entrada para registrar un pago.
type CreatePaymentRequest struct {
	InvoiceID      string          `json:"invoice_id" validate:"required,uuid"`
	Method         string          `json:"method" validate:"required,max=50"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	TransactionRef *string         `json:"transaction_ref"`
	CreatedBy      *string         `json:"created_by" validate:"omitempty,uuid"`
}

// UpdatePaymentRequest actualización parcial de un pago.
type UpdatePaymentRequest struct {
	Method         *string          `json:"method"`
	Amount         *decimal.Decimal `json:"amount"`
	TransactionRef *string          `json:"transaction_ref"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoice_id"`
	Method         string          `json:"method"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionRef *string         `json:"transaction_ref"`
	PaidAt         time.Time       `json:"paid_at"`
	CreatedBy      *string         `json:"created_by"`
}
