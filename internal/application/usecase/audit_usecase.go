package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// AuditLogUseCase casos de uso CRUD para el registro de auditoría (borrado físico).
type AuditLogUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditLogUseCase construye el caso de uso.
func NewAuditLogUseCase(repo repository.AuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

// Create registra una entrada de auditoría.
func (uc *AuditLogUseCase) Create(in dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error) {
	log := &entity.AuditLog{
		ID:          uuid.New().String(),
		Entity:      in.Entity,
		EntityID:    in.EntityID,
		Action:      in.Action,
		OldData:     in.OldData,
		NewData:     in.NewData,
		PerformedBy: in.PerformedBy,
		Reason:      in.Reason,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return toAuditLogResponse(log), nil
}

// List lista todas las entradas.
func (uc *AuditLogUseCase) List() ([]dto.AuditLogResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toAuditLogResponse(l))
	}
	return out, nil
}

// GetByID obtiene una entrada por ID, o nil si no existe.
func (uc *AuditLogUseCase) GetByID(id string) (*dto.AuditLogResponse, error) {
	log, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	return toAuditLogResponse(log), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *AuditLogUseCase) Update(id string, in dto.UpdateAuditLogRequest) (*dto.AuditLogResponse, error) {
	log, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	if in.Action != nil {
		log.Action = *in.Action
	}
	if in.NewData != nil {
		log.NewData = in.NewData
	}
	if in.Reason != nil {
		log.Reason = in.Reason
	}
	if err := uc.repo.Update(log); err != nil {
		return nil, err
	}
	return toAuditLogResponse(log), nil
}

// Delete elimina la entrada (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *AuditLogUseCase) Delete(id string) (*dto.AuditLogResponse, error) {
	log, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toAuditLogResponse(log), nil
}

func toAuditLogResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	if l == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:          l.ID,
		Entity:      l.Entity,
		EntityID:    l.EntityID,
		Action:      l.Action,
		OldData:     l.OldData,
		NewData:     l.NewData,
		PerformedBy: l.PerformedBy,
		Reason:      l.Reason,
		CreatedAt:   l.CreatedAt,
	}
}
