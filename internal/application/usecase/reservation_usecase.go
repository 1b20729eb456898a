package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// ReservationUseCase casos de uso CRUD para reservas (borrado físico:
// entidad transaccional, no dato maestro).
type ReservationUseCase struct {
	repo repository.ReservationRepository
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(repo repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo}
}

// Create crea una reserva; el estado por defecto es "confirmed".
func (uc *ReservationUseCase) Create(in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	status := "confirmed"
	if in.Status != nil {
		status = *in.Status
	}
	reservation := &entity.Reservation{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		ReservedAt: in.ReservedAt,
		People:     in.People,
		TableID:    in.TableID,
		Status:     status,
		Notes:      in.Notes,
		CreatedBy:  in.CreatedBy,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(reservation); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

// List lista todas las reservas.
func (uc *ReservationUseCase) List() ([]dto.ReservationResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

// GetByID obtiene una reserva por ID, o nil si no existe.
func (uc *ReservationUseCase) GetByID(id string) (*dto.ReservationResponse, error) {
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, nil
	}
	return toReservationResponse(reservation), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *ReservationUseCase) Update(id string, in dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, nil
	}
	if in.CustomerID != nil {
		reservation.CustomerID = in.CustomerID
	}
	if in.ReservedAt != nil {
		reservation.ReservedAt = *in.ReservedAt
	}
	if in.People != nil {
		reservation.People = *in.People
	}
	if in.TableID != nil {
		reservation.TableID = in.TableID
	}
	if in.Status != nil {
		reservation.Status = *in.Status
	}
	if in.Notes != nil {
		reservation.Notes = in.Notes
	}
	if err := uc.repo.Update(reservation); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

// Delete elimina la reserva físicamente y la devuelve, o nil si no existe.
func (uc *ReservationUseCase) Delete(id string) (*dto.ReservationResponse, error) {
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ReservedAt: r.ReservedAt,
		People:     r.People,
		TableID:    r.TableID,
		Status:     r.Status,
		Notes:      r.Notes,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
	}
}
