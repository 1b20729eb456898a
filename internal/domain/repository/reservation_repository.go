package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// ReservationRepository define el puerto de persistencia para Reservation (DIP).
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	ListAll() ([]*entity.Reservation, error)
	Update(reservation *entity.Reservation) error
	Delete(id string) (bool, error)
}
