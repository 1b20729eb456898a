package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// RoleUseCase casos de uso CRUD para roles. Borrado siempre lógico:
// un rol referenciado por usuarios no puede eliminarse físicamente.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol nuevo.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List lista los roles activos.
func (uc *RoleUseCase) List() ([]dto.RoleResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// GetByID obtiene un rol por ID, o nil si no existe.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = in.Description
	}
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete marca el rol como inactivo (borrado lógico) y lo devuelve, o nil si no existe.
func (uc *RoleUseCase) Delete(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	role.IsActive = false
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}
