package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// TableUseCase implementa el ciclo de vida compuesto mesa + estado:
// se crean juntos, el estado se actualiza por separado y se borran juntos.
// El estado es un valor plano, no una máquina de estados con transiciones
// vigiladas: cualquier string puede seguir a cualquier otro.
type TableUseCase struct {
	tx       TableTxRunner
	tables   repository.TableRepository
	statuses repository.TableStatusRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(tx TableTxRunner, tables repository.TableRepository, statuses repository.TableStatusRepository) *TableUseCase {
	return &TableUseCase{tx: tx, tables: tables, statuses: statuses}
}

// Create inserta la mesa y su fila de estado inicial "free" dentro de una
// transacción. Código duplicado -> ErrDuplicate desde el repo.
func (uc *TableUseCase) Create(ctx context.Context, in dto.CreateTableRequest) (*dto.TableWithStatusResponse, error) {
	now := time.Now()
	table := &entity.Table{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Seats:     in.Seats,
		Location:  in.Location,
		IsActive:  true,
		CreatedAt: now,
	}
	status := &entity.TableStatus{
		ID:        uuid.New().String(),
		TableID:   table.ID,
		Status:    entity.TableStatusFree,
		UpdatedAt: now,
	}
	err := uc.tx.RunTableTx(ctx, func(tables repository.TableRepository, statuses repository.TableStatusRepository) error {
		if err := tables.Create(table); err != nil {
			return err
		}
		return statuses.Create(status)
	})
	if err != nil {
		return nil, err
	}
	return toTableWithStatusResponse(table, status), nil
}

// List lee todas las mesas activas y todas las filas de estado y las une en
// memoria por table_id. Una mesa sin fila de estado cae al valor "free" con
// status_id nulo: nunca debería ocurrir porque la creación las empareja,
// pero el listado no se rompe por una inconsistencia de datos.
func (uc *TableUseCase) List() ([]dto.TableWithStatusResponse, error) {
	tables, err := uc.tables.ListActive()
	if err != nil {
		return nil, err
	}
	statuses, err := uc.statuses.ListAll()
	if err != nil {
		return nil, err
	}
	byTable := make(map[string]*entity.TableStatus, len(statuses))
	for _, s := range statuses {
		byTable[s.TableID] = s
	}
	out := make([]dto.TableWithStatusResponse, 0, len(tables))
	for _, t := range tables {
		out = append(out, *toTableWithStatusResponse(t, byTable[t.ID]))
	}
	return out, nil
}

// GetByID devuelve una mesa con su estado actual, o nil si no existe.
func (uc *TableUseCase) GetByID(id string) (*dto.TableWithStatusResponse, error) {
	table, err := uc.tables.GetByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	status, err := uc.statuses.GetByTableID(id)
	if err != nil {
		return nil, err
	}
	return toTableWithStatusResponse(table, status), nil
}

// Update aplica una actualización parcial de los metadatos de la mesa
// (solo los campos presentes). El estado no se toca por aquí.
func (uc *TableUseCase) Update(id string, in dto.UpdateTableRequest) (*dto.TableWithStatusResponse, error) {
	table, err := uc.tables.GetByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	if in.Code != nil {
		table.Code = *in.Code
	}
	if in.Seats != nil {
		table.Seats = *in.Seats
	}
	if in.Location != nil {
		table.Location = in.Location
	}
	if err := uc.tables.Update(table); err != nil {
		return nil, err
	}
	status, err := uc.statuses.GetByTableID(id)
	if err != nil {
		return nil, err
	}
	return toTableWithStatusResponse(table, status), nil
}

// UpdateStatus localiza la fila de estado por table_id (no por su propio id),
// sobrescribe status/updated_by/updated_at y relee la mesa para la vista
// compuesta. Devuelve nil si falta la fila de estado o la mesa.
func (uc *TableUseCase) UpdateStatus(tableID, newStatus string, updatedBy *string) (*dto.TableWithStatusResponse, error) {
	status, err := uc.statuses.GetByTableID(tableID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}
	status.Status = newStatus
	status.UpdatedBy = updatedBy
	status.UpdatedAt = time.Now()
	if err := uc.statuses.Update(status); err != nil {
		return nil, err
	}
	table, err := uc.tables.GetByID(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	return toTableWithStatusResponse(table, status), nil
}

// Delete elimina la(s) fila(s) de estado y luego la mesa, dentro de una
// transacción. Devuelve un resumen con el estado sintético "deleted", o nil
// si la mesa no existía.
func (uc *TableUseCase) Delete(ctx context.Context, id string) (*dto.TableWithStatusResponse, error) {
	table, err := uc.tables.GetByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	err = uc.tx.RunTableTx(ctx, func(tables repository.TableRepository, statuses repository.TableStatusRepository) error {
		if err := statuses.DeleteByTableID(id); err != nil {
			return err
		}
		_, err := tables.Delete(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toTableWithStatusResponse(table, nil)
	out.Status = entity.TableStatusDeleted
	return out, nil
}

func toTableWithStatusResponse(t *entity.Table, s *entity.TableStatus) *dto.TableWithStatusResponse {
	if t == nil {
		return nil
	}
	out := &dto.TableWithStatusResponse{
		ID:        t.ID,
		Code:      t.Code,
		Seats:     t.Seats,
		Location:  t.Location,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		Status:    entity.TableStatusFree,
	}
	if s != nil {
		out.Status = s.Status
		out.StatusID = &s.ID
		out.UpdatedBy = s.UpdatedBy
		out.UpdatedAt = &s.UpdatedAt
	}
	return out
}
