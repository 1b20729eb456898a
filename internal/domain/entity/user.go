package entity

import "time"

// User representa un usuario del sistema con su rol asociado por ID.
// Las relaciones se resuelven con lookups explícitos, nunca como grafo de objetos.
type User struct {
	ID           string
	Username     string
	Email        *string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	FullName     *string
	RoleID       *string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
