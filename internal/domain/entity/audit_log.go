package entity

import "time"

// AuditLog registra una acción sobre una entidad con snapshots JSON
// del antes y el después. Borrado físico (entidad de eventos).
type AuditLog struct {
	ID          string
	Entity      string
	EntityID    *string
	Action      string // create, update, delete...
	OldData     map[string]any
	NewData     map[string]any
	PerformedBy *string
	Reason      *string
	CreatedAt   time.Time
}
