package dto

import "time"

// CreateAuditLogRequest entrada para registrar una entrada de auditoría.
type CreateAuditLogRequest struct {
	Entity      string         `json:"entity" validate:"required,max=100"`
	EntityID    *string        `json:"entity_id" validate:"omitempty,uuid"`
	Action      string         `json:"action" validate:"required,max=50"`
	OldData     map[string]any `json:"old_data"`
	NewData     map[string]any `json:"new_data"`
	PerformedBy *string        `json:"performed_by" validate:"omitempty,uuid"`
	Reason      *string        `json:"reason"`
}

// UpdateAuditLogRequest actualización parcial de una entrada de auditoría.
type UpdateAuditLogRequest struct {
	Action  *string        `json:"action"`
	NewData map[string]any `json:"new_data"`
	Reason  *string        `json:"reason"`
}

// AuditLogResponse salida de una entrada de auditoría.
type AuditLogResponse struct {
	ID          string         `json:"id"`
	Entity      string         `json:"entity"`
	EntityID    *string        `json:"entity_id"`
	Action      string         `json:"action"`
	OldData     map[string]any `json:"old_data"`
	NewData     map[string]any `json:"new_data"`
	PerformedBy *string        `json:"performed_by"`
	Reason      *string        `json:"reason"`
	CreatedAt   time.Time      `json:"created_at"`
}
