package dto

import "time"

// CreateReservationRequest entrada para crear una reserva.
type CreateReservationRequest struct {
	CustomerID *string   `json:"customer_id" validate:"omitempty,uuid"`
	ReservedAt time.Time `json:"reserved_at" validate:"required"`
	People     int       `json:"people" validate:"required,min=1"`
	TableID    *string   `json:"table_id" validate:"omitempty,uuid"`
	Status     *string   `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedBy  *string   `json:"created_by" validate:"omitempty,uuid"`
}

// UpdateReservationRequest actualización parcial de una reserva.
type UpdateReservationRequest struct {
	CustomerID *string    `json:"customer_id"`
	ReservedAt *time.Time `json:"reserved_at"`
	People     *int       `json:"people"`
	TableID    *string    `json:"table_id"`
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID         string    `json:"id"`
	CustomerID *string   `json:"customer_id"`
	ReservedAt time.Time `json:"reserved_at"`
	People     int       `json:"people"`
	TableID    *string   `json:"table_id"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedBy  *string   `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
