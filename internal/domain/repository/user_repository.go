package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByUsername y GetByEmail devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListActive() ([]*entity.User, error)
	Update(user *entity.User) error
}
