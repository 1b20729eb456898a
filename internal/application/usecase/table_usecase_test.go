package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTableRepo struct {
	tables map[string]*entity.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: map[string]*entity.Table{}}
}

func (r *fakeTableRepo) Create(t *entity.Table) error {
	for _, existing := range r.tables {
		if existing.Code == t.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *fakeTableRepo) GetByID(id string) (*entity.Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTableRepo) ListActive() ([]*entity.Table, error) {
	out := make([]*entity.Table, 0, len(r.tables))
	for _, t := range r.tables {
		if t.IsActive {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTableRepo) Update(t *entity.Table) error {
	if _, ok := r.tables[t.ID]; !ok {
		return nil
	}
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *fakeTableRepo) Delete(id string) (bool, error) {
	if _, ok := r.tables[id]; !ok {
		return false, nil
	}
	delete(r.tables, id)
	return true, nil
}

type fakeTableStatusRepo struct {
	statuses map[string]*entity.TableStatus // por table_id
}

func newFakeTableStatusRepo() *fakeTableStatusRepo {
	return &fakeTableStatusRepo{statuses: map[string]*entity.TableStatus{}}
}

func (r *fakeTableStatusRepo) Create(s *entity.TableStatus) error {
	cp := *s
	r.statuses[s.TableID] = &cp
	return nil
}

func (r *fakeTableStatusRepo) GetByTableID(tableID string) (*entity.TableStatus, error) {
	s, ok := r.statuses[tableID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeTableStatusRepo) ListAll() ([]*entity.TableStatus, error) {
	out := make([]*entity.TableStatus, 0, len(r.statuses))
	for _, s := range r.statuses {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTableStatusRepo) Update(s *entity.TableStatus) error {
	if _, ok := r.statuses[s.TableID]; !ok {
		return nil
	}
	cp := *s
	r.statuses[s.TableID] = &cp
	return nil
}

func (r *fakeTableStatusRepo) DeleteByTableID(tableID string) error {
	delete(r.statuses, tableID)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos, sin
// transacción real.
type fakeTxRunner struct {
	tables   repository.TableRepository
	statuses repository.TableStatusRepository
}

func (r *fakeTxRunner) RunTableTx(_ context.Context, fn func(repository.TableRepository, repository.TableStatusRepository) error) error {
	return fn(r.tables, r.statuses)
}

func newTableUseCase() (*usecase.TableUseCase, *fakeTableRepo, *fakeTableStatusRepo) {
	tables := newFakeTableRepo()
	statuses := newFakeTableStatusRepo()
	tx := &fakeTxRunner{tables: tables, statuses: statuses}
	return usecase.NewTableUseCase(tx, tables, statuses), tables, statuses
}

func strptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear una mesa la deja en estado "free" con su fila de estado emparejada.
func TestTableCreate_EstadoInicialFree(t *testing.T) {
	uc, _, statuses := newTableUseCase()

	out, err := uc.Create(context.Background(), dto.CreateTableRequest{
		Code:     "T1",
		Seats:    4,
		Location: strptr("terraza"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "T1", out.Code)
	assert.Equal(t, 4, out.Seats)
	assert.Equal(t, entity.TableStatusFree, out.Status)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.StatusID, "la fila de estado debe crearse junto con la mesa")

	s, _ := statuses.GetByTableID(out.ID)
	require.NotNil(t, s)
	assert.Equal(t, entity.TableStatusFree, s.Status)
}

// Caso 2: código duplicado -> ErrDuplicate.
func TestTableCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _ := newTableUseCase()

	_, err := uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 4})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Caso 3: cambiar el estado sobrescribe la misma fila y avanza updated_at.
func TestTableUpdateStatus_SobrescribeYAvanzaTimestamp(t *testing.T) {
	uc, _, statuses := newTableUseCase()

	created, err := uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 4})
	require.NoError(t, err)
	antes, _ := statuses.GetByTableID(created.ID)

	time.Sleep(5 * time.Millisecond)
	mesero := "mesero-1"
	out, err := uc.UpdateStatus(created.ID, "occupied", &mesero)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "occupied", out.Status)
	require.NotNil(t, out.UpdatedBy)
	assert.Equal(t, "mesero-1", *out.UpdatedBy)

	despues, _ := statuses.GetByTableID(created.ID)
	assert.Equal(t, antes.ID, despues.ID, "se sobrescribe la misma fila, no se inserta otra")
	assert.True(t, despues.UpdatedAt.After(antes.UpdatedAt), "updated_at debe avanzar")
}

// Caso 4: cambiar el estado de una mesa inexistente devuelve nil, no error.
func TestTableUpdateStatus_MesaInexistente(t *testing.T) {
	uc, _, _ := newTableUseCase()

	out, err := uc.UpdateStatus("no-existe", "occupied", nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Caso 5: el listado une mesas y estados por table_id.
func TestTableList_UneMesaYEstado(t *testing.T) {
	uc, _, _ := newTableUseCase()

	t1, err := uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 4})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateTableRequest{Code: "T2", Seats: 2})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(t1.ID, "reserved", nil)
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	byCode := map[string]dto.TableWithStatusResponse{}
	for _, row := range list {
		byCode[row.Code] = row
	}
	assert.Equal(t, "reserved", byCode["T1"].Status)
	assert.Equal(t, entity.TableStatusFree, byCode["T2"].Status)
}

// Caso 6: actualizar metadatos no toca el estado.
func TestTableUpdate_NoTocaElEstado(t *testing.T) {
	uc, _, _ := newTableUseCase()

	created, err := uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 4})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(created.ID, "occupied", nil)
	require.NoError(t, err)

	seats := 6
	out, err := uc.Update(created.ID, dto.UpdateTableRequest{Seats: &seats})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 6, out.Seats)
	assert.Equal(t, "occupied", out.Status, "el estado se mantiene tras actualizar metadatos")
}

// Caso 7: borrar elimina mesa y fila de estado, y devuelve el resumen "deleted".
func TestTableDelete_EliminaMesaYEstado(t *testing.T) {
	uc, tables, statuses := newTableUseCase()

	created, err := uc.Create(context.Background(), dto.CreateTableRequest{Code: "T1", Seats: 4})
	require.NoError(t, err)

	out, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.TableStatusDeleted, out.Status)
	assert.Equal(t, "T1", out.Code)
	assert.Nil(t, out.StatusID, "el resumen de borrado no referencia fila de estado")

	gone, _ := tables.GetByID(created.ID)
	assert.Nil(t, gone)
	s, _ := statuses.GetByTableID(created.ID)
	assert.Nil(t, s)

	// Tras el borrado, GetByID del caso de uso también devuelve nil.
	res, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, res)
}

// Caso 8: borrar una mesa inexistente devuelve nil, no error.
func TestTableDelete_MesaInexistente(t *testing.T) {
	uc, _, _ := newTableUseCase()

	out, err := uc.Delete(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
