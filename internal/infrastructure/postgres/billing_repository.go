package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, order_id, subtotal, tax_total, tip_amount,
			discount_amount, total, created_by, created_at, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.OrderID, invoice.Subtotal, invoice.TaxTotal,
		invoice.TipAmount, invoice.DiscountAmount, invoice.Total, invoice.CreatedBy,
		invoice.CreatedAt, invoice.Paid,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, order_id, subtotal, tax_total, tip_amount,
			discount_amount, total, created_by, created_at, paid
		FROM invoices WHERE id = $1`
	var i entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.InvoiceNumber, &i.OrderID, &i.Subtotal, &i.TaxTotal,
		&i.TipAmount, &i.DiscountAmount, &i.Total, &i.CreatedBy, &i.CreatedAt, &i.Paid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &i, nil
}

// ListAll lista todas las facturas, más recientes primero.
func (r *InvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, order_id, subtotal, tax_total, tip_amount,
			discount_amount, total, created_by, created_at, paid
		FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var i entity.Invoice
		if err := rows.Scan(&i.ID, &i.InvoiceNumber, &i.OrderID, &i.Subtotal, &i.TaxTotal,
			&i.TipAmount, &i.DiscountAmount, &i.Total, &i.CreatedBy, &i.CreatedAt, &i.Paid); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una factura existente.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET subtotal = $2, tax_total = $3, tip_amount = $4,
			discount_amount = $5, total = $6, paid = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Subtotal, invoice.TaxTotal, invoice.TipAmount,
		invoice.DiscountAmount, invoice.Total, invoice.Paid,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina físicamente la factura; devuelve false si no existía.
func (r *InvoiceRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, method, amount, transaction_ref, paid_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.Method, payment.Amount,
		payment.TransactionRef, payment.PaidAt, payment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, method, amount, transaction_ref, paid_at, created_by
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.Method, &p.Amount, &p.TransactionRef, &p.PaidAt, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListAll lista todos los pagos, más recientes primero.
func (r *PaymentRepo) ListAll() ([]*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, method, amount, transaction_ref, paid_at, created_by
		FROM payments ORDER BY paid_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Method, &p.Amount, &p.TransactionRef,
			&p.PaidAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un pago existente.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET method = $2, amount = $3, transaction_ref = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Method, payment.Amount, payment.TransactionRef,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete elimina físicamente el pago; devuelve false si no existía.
func (r *PaymentRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
