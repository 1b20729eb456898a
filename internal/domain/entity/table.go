package entity

import "time"

// Estados habituales de una mesa. El campo Status de TableStatus es texto
// libre: se aceptan y persisten valores fuera de esta lista.
const (
	TableStatusFree     = "free"
	TableStatusOccupied = "occupied"
	TableStatusReserved = "reserved"
	TableStatusCleaning = "cleaning"
	TableStatusDeleted  = "deleted" // valor sintético en el resumen de borrado
)

// Table representa una mesa física del restaurante.
// Toda mesa creada por el ciclo de vida tiene exactamente un TableStatus.
type Table struct {
	ID        string
	Code      string // único
	Seats     int
	Location  *string
	IsActive  bool
	CreatedAt time.Time
}

// TableStatus es el estado mutable de una mesa, en fila aparte para conservar
// la atribución del último cambio (updated_by, updated_at) separada de los
// metadatos de la mesa.
type TableStatus struct {
	ID        string
	TableID   string
	Status    string
	UpdatedBy *string
	UpdatedAt time.Time
}

// TableWithStatus es la vista compuesta mesa + estado actual.
// StatusID es nil cuando la fila de estado falta o en el resumen de una
// mesa borrada.
type TableWithStatus struct {
	Table
	Status    string
	StatusID  *string
	UpdatedBy *string
}
