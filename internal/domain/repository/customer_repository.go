package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListActive() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
