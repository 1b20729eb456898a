package entity

import "time"

// Customer representa un cliente del restaurante.
type Customer struct {
	ID        string
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
}
