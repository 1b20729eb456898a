package entity

import "time"

// Role representa un rol de usuario (admin, mesero, cocinero, cajero...).
// Borrado lógico via IsActive; un rol en uso nunca se elimina físicamente.
type Role struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}
