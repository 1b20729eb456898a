package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación del puerto TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

// Create persiste una nueva mesa.
func (r *TableRepo) Create(table *entity.Table) error {
	query := `
		INSERT INTO tables (id, code, seats, location, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.Code, table.Seats, table.Location, table.IsActive, table.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID obtiene una mesa por ID.
func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	query := `
		SELECT id, code, seats, location, is_active, created_at
		FROM tables WHERE id = $1`
	var t entity.Table
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Code, &t.Seats, &t.Location, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

// ListActive lista las mesas activas ordenadas por código.
func (r *TableRepo) ListActive() ([]*entity.Table, error) {
	query := `
		SELECT id, code, seats, location, is_active, created_at
		FROM tables WHERE is_active = TRUE ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Code, &t.Seats, &t.Location, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una mesa existente.
func (r *TableRepo) Update(table *entity.Table) error {
	query := `
		UPDATE tables SET code = $2, seats = $3, location = $4, is_active = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.Code, table.Seats, table.Location, table.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

// Delete elimina físicamente la mesa; devuelve false si no existía.
func (r *TableRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete table: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

var _ repository.TableStatusRepository = (*TableStatusRepo)(nil)

// TableStatusRepo implementación del puerto TableStatusRepository sobre PostgreSQL.
type TableStatusRepo struct {
	q Querier
}

// NewTableStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableStatusRepository(q Querier) *TableStatusRepo {
	return &TableStatusRepo{q: q}
}

// Create persiste una fila de estado para una mesa.
func (r *TableStatusRepo) Create(status *entity.TableStatus) error {
	query := `
		INSERT INTO table_status (id, table_id, status, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		status.ID, status.TableID, status.Status, status.UpdatedBy, status.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert table status: %w", err)
	}
	return nil
}

// GetByTableID obtiene la fila de estado de una mesa por table_id.
func (r *TableStatusRepo) GetByTableID(tableID string) (*entity.TableStatus, error) {
	query := `
		SELECT id, table_id, status, updated_by, updated_at
		FROM table_status WHERE table_id = $1 LIMIT 1`
	var s entity.TableStatus
	err := r.q.QueryRow(context.Background(), query, tableID).Scan(
		&s.ID, &s.TableID, &s.Status, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table status: %w", err)
	}
	return &s, nil
}

// ListAll lista todas las filas de estado.
func (r *TableStatusRepo) ListAll() ([]*entity.TableStatus, error) {
	query := `
		SELECT id, table_id, status, updated_by, updated_at
		FROM table_status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list table status: %w", err)
	}
	defer rows.Close()
	var list []*entity.TableStatus
	for rows.Next() {
		var s entity.TableStatus
		if err := rows.Scan(&s.ID, &s.TableID, &s.Status, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una fila de estado existente.
func (r *TableStatusRepo) Update(status *entity.TableStatus) error {
	query := `
		UPDATE table_status SET status = $2, updated_by = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		status.ID, status.Status, status.UpdatedBy, status.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update table status: %w", err)
	}
	return nil
}

// DeleteByTableID elimina la(s) fila(s) de estado de una mesa.
func (r *TableStatusRepo) DeleteByTableID(tableID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM table_status WHERE table_id = $1`, tableID)
	if err != nil {
		return fmt.Errorf("delete table status: %w", err)
	}
	return nil
}
