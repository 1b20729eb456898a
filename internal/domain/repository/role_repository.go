package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
// El borrado de roles es siempre lógico (Update con IsActive=false):
// la FK de users es RESTRICT y un rol en uso no puede eliminarse físicamente.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	ListActive() ([]*entity.Role, error)
	Update(role *entity.Role) error
}
