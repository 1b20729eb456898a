package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación del puerto ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una nueva reserva.
func (r *ReservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_id, reserved_at, people, table_id, status, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.CustomerID, reservation.ReservedAt, reservation.People,
		reservation.TableID, reservation.Status, reservation.Notes, reservation.CreatedBy,
		reservation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `
		SELECT id, customer_id, reserved_at, people, table_id, status, notes, created_by, created_at
		FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.CustomerID, &res.ReservedAt, &res.People, &res.TableID,
		&res.Status, &res.Notes, &res.CreatedBy, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// ListAll lista todas las reservas ordenadas por fecha de reserva.
func (r *ReservationRepo) ListAll() ([]*entity.Reservation, error) {
	query := `
		SELECT id, customer_id, reserved_at, people, table_id, status, notes, created_by, created_at
		FROM reservations ORDER BY reserved_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.CustomerID, &res.ReservedAt, &res.People, &res.TableID,
			&res.Status, &res.Notes, &res.CreatedBy, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update actualiza una reserva existente.
func (r *ReservationRepo) Update(reservation *entity.Reservation) error {
	query := `
		UPDATE reservations SET customer_id = $2, reserved_at = $3, people = $4, table_id = $5,
			status = $6, notes = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.CustomerID, reservation.ReservedAt, reservation.People,
		reservation.TableID, reservation.Status, reservation.Notes,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// Delete elimina físicamente la reserva; devuelve false si no existía.
func (r *ReservationRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
