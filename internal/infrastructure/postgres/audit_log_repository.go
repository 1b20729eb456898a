package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
// Los snapshots old_data y new_data se guardan como JSONB; pgx mapea
// map[string]any directo al codec JSONB.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una nueva entrada de auditoría.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, entity, entity_id, action, old_data, new_data, performed_by, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Entity, log.EntityID, log.Action, log.OldData, log.NewData,
		log.PerformedBy, log.Reason, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *AuditLogRepo) GetByID(id string) (*entity.AuditLog, error) {
	query := `
		SELECT id, entity, entity_id, action, old_data, new_data, performed_by, reason, created_at
		FROM audit_logs WHERE id = $1`
	var l entity.AuditLog
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Entity, &l.EntityID, &l.Action, &l.OldData, &l.NewData,
		&l.PerformedBy, &l.Reason, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit log: %w", err)
	}
	return &l, nil
}

// ListAll lista todas las entradas, más recientes primero.
func (r *AuditLogRepo) ListAll() ([]*entity.AuditLog, error) {
	query := `
		SELECT id, entity, entity_id, action, old_data, new_data, performed_by, reason, created_at
		FROM audit_logs ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Entity, &l.EntityID, &l.Action, &l.OldData, &l.NewData,
			&l.PerformedBy, &l.Reason, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una entrada existente.
func (r *AuditLogRepo) Update(log *entity.AuditLog) error {
	query := `
		UPDATE audit_logs SET action = $2, new_data = $3, reason = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, log.ID, log.Action, log.NewData, log.Reason)
	if err != nil {
		return fmt.Errorf("update audit log: %w", err)
	}
	return nil
}

// Delete elimina físicamente la entrada; devuelve false si no existía.
func (r *AuditLogRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM audit_logs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete audit log: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
