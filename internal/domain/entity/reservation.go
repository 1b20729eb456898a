package entity

import "time"

// Reservation representa una reserva de mesa. Borrado físico (entidad transaccional).
type Reservation struct {
	ID         string
	CustomerID *string
	ReservedAt time.Time
	People     int
	TableID    *string
	Status     string // confirmed, seated, cancelled, no_show
	Notes      *string
	CreatedBy  *string
	CreatedAt  time.Time
}
