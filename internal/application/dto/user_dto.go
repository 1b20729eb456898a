package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required,max=32"`
	Description *string `json:"description"`
}

// UpdateRoleRequest actualización parcial de un rol: solo se aplican los
// campos presentes.
type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
	RoleID   *string `json:"role_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest actualización parcial de un usuario. Password presente
// implica re-hash; ausente deja el hash intacto.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	RoleID   *string `json:"role_id"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     *string    `json:"email"`
	FullName  *string    `json:"full_name"`
	RoleID    *string    `json:"role_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}
