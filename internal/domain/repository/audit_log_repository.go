package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog (DIP).
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	GetByID(id string) (*entity.AuditLog, error)
	ListAll() ([]*entity.AuditLog, error)
	Update(log *entity.AuditLog) error
	Delete(id string) (bool, error)
}
