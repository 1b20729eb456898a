package usecase

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// InvoicePDFGenerator genera el PDF de una factura con sus pagos.
type InvoicePDFGenerator interface {
	Generate(invoice *entity.Invoice, payments []*entity.Payment) ([]byte, error)
}

// newInvoiceNumber genera un consecutivo legible y ordenable por tiempo.
func newInvoiceNumber() string {
	return "INV-" + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// InvoiceUseCase casos de uso CRUD para facturas (borrado físico) y la
// generación del PDF.
type InvoiceUseCase struct {
	repo     repository.InvoiceRepository
	payments repository.PaymentRepository
	pdfGen   InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, payments repository.PaymentRepository, pdfGen InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, payments: payments, pdfGen: pdfGen}
}

// Create emite una factura. Sin invoice_number se genera uno; los montos
// llegan ya calculados del caller.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice := &entity.Invoice{
		ID:             uuid.New().String(),
		InvoiceNumber:  in.InvoiceNumber,
		OrderID:        in.OrderID,
		Subtotal:       in.Subtotal,
		TaxTotal:       decimal.Zero,
		TipAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		Total:          in.Total,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now(),
	}
	if invoice.InvoiceNumber == nil || *invoice.InvoiceNumber == "" {
		number := newInvoiceNumber()
		invoice.InvoiceNumber = &number
	}
	if in.TaxTotal != nil {
		invoice.TaxTotal = *in.TaxTotal
	}
	if in.TipAmount != nil {
		invoice.TipAmount = *in.TipAmount
	}
	if in.DiscountAmount != nil {
		invoice.DiscountAmount = *in.DiscountAmount
	}
	if in.Paid != nil {
		invoice.Paid = *in.Paid
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List lista todas las facturas.
func (uc *InvoiceUseCase) List() ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toInvoiceResponse(i))
	}
	return out, nil
}

// GetByID obtiene una factura por ID, o nil si no existe.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.Subtotal != nil {
		invoice.Subtotal = *in.Subtotal
	}
	if in.TaxTotal != nil {
		invoice.TaxTotal = *in.TaxTotal
	}
	if in.TipAmount != nil {
		invoice.TipAmount = *in.TipAmount
	}
	if in.DiscountAmount != nil {
		invoice.DiscountAmount = *in.DiscountAmount
	}
	if in.Total != nil {
		invoice.Total = *in.Total
	}
	if in.Paid != nil {
		invoice.Paid = *in.Paid
	}
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina la factura (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *InvoiceUseCase) Delete(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GeneratePDF produce el PDF de la factura con los pagos aplicados.
func (uc *InvoiceUseCase) GeneratePDF(id string) ([]byte, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.payments.ListAll()
	if err != nil {
		return nil, err
	}
	applied := make([]*entity.Payment, 0, len(all))
	for _, p := range all {
		if p.InvoiceID == invoice.ID {
			applied = append(applied, p)
		}
	}
	return uc.pdfGen.Generate(invoice, applied)
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	if i == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:             i.ID,
		InvoiceNumber:  i.InvoiceNumber,
		OrderID:        i.OrderID,
		Subtotal:       i.Subtotal,
		TaxTotal:       i.TaxTotal,
		TipAmount:      i.TipAmount,
		DiscountAmount: i.DiscountAmount,
		Total:          i.Total,
		CreatedBy:      i.CreatedBy,
		CreatedAt:      i.CreatedAt,
		Paid:           i.Paid,
	}
}

// PaymentUseCase casos de uso CRUD para pagos (borrado físico).
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create registra un pago contra una factura.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	payment := &entity.Payment{
		ID:             uuid.New().String(),
		InvoiceID:      in.InvoiceID,
		Method:         in.Method,
		Amount:         in.Amount,
		TransactionRef: in.TransactionRef,
		PaidAt:         time.Now(),
		CreatedBy:      in.CreatedBy,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List lista todos los pagos.
func (uc *PaymentUseCase) List() ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

// GetByID obtiene un pago por ID, o nil si no existe.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	if in.Method != nil {
		payment.Method = *in.Method
	}
	if in.Amount != nil {
		payment.Amount = *in.Amount
	}
	if in.TransactionRef != nil {
		payment.TransactionRef = in.TransactionRef
	}
	if err := uc.repo.Update(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina el pago (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *PaymentUseCase) Delete(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:             p.ID,
		InvoiceID:      p.InvoiceID,
		Method:         p.Method,
		Amount:         p.Amount,
		TransactionRef: p.TransactionRef,
		PaidAt:         p.PaidAt,
		CreatedBy:      p.CreatedBy,
	}
}
