package dto

import "time"

// CreateTableRequest entrada para crear una mesa (el estado inicial "free"
// lo pone el ciclo de vida, no el caller).
type CreateTableRequest struct {
	Code     string  `json:"code" validate:"required,max=50"`
	Seats    int     `json:"seats" validate:"required,min=1"`
	Location *string `json:"location"`
}

// UpdateTableRequest actualización parcial de los metadatos de una mesa.
// El estado se cambia por PATCH /tables/:id/status, no por aquí.
type UpdateTableRequest struct {
	Code     *string `json:"code"`
	Seats    *int    `json:"seats"`
	Location *string `json:"location"`
}

// UpdateTableStatusRequest entrada para cambiar solo el estado. Texto libre:
// no se valida contra un conjunto cerrado.
type UpdateTableStatusRequest struct {
	Status string `json:"status" validate:"required,max=32"`
}

// TableWithStatusResponse vista compuesta mesa + estado actual.
type TableWithStatusResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Seats     int        `json:"seats"`
	Location  *string    `json:"location"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	Status    string     `json:"status"`
	StatusID  *string    `json:"status_id"`
	UpdatedBy *string    `json:"updated_by"`
	UpdatedAt *time.Time `json:"updated_at"`
}
