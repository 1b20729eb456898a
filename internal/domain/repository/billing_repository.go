package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListAll() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) (bool, error)
}

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListAll() ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) (bool, error)
}
