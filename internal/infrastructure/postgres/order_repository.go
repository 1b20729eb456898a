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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_code, table_id, customer_id, created_by, status, is_takeaway, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderCode, order.TableID, order.CustomerID, order.CreatedBy,
		order.Status, order.IsTakeaway, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, order_code, table_id, customer_id, created_by, status, is_takeaway, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderCode, &o.TableID, &o.CustomerID, &o.CreatedBy,
		&o.Status, &o.IsTakeaway, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListAll lista todos los pedidos, más recientes primero.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	query := `
		SELECT id, order_code, table_id, customer_id, created_by, status, is_takeaway, created_at, updated_at
		FROM orders ORDER BY created_at DESC`
	return r.queryOrders(query)
}

// ListByStatuses devuelve los pedidos cuyo status está en el conjunto dado.
func (r *OrderRepo) ListByStatuses(statuses []string) ([]*entity.Order, error) {
	query := `
		SELECT id, order_code, table_id, customer_id, created_by, status, is_takeaway, created_at, updated_at
		FROM orders WHERE status = ANY($1) ORDER BY created_at`
	return r.queryOrders(query, statuses)
}

func (r *OrderRepo) queryOrders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderCode, &o.TableID, &o.CustomerID, &o.CreatedBy,
			&o.Status, &o.IsTakeaway, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza un pedido existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET table_id = $2, customer_id = $3, status = $4, is_takeaway = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TableID, order.CustomerID, order.Status, order.IsTakeaway, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina físicamente el pedido; devuelve false si no existía.
func (r *OrderRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación del puerto OrderItemRepository sobre PostgreSQL.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// Create persiste una nueva línea de pedido.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, menu_item_id, quantity, unit_price, tax_rate, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice,
		item.TaxRate, item.Notes, item.Status, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de pedido por ID.
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, quantity, unit_price, tax_rate, notes, status, created_at
		FROM order_items WHERE id = $1`
	var i entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.OrderID, &i.MenuItemID, &i.Quantity, &i.UnitPrice,
		&i.TaxRate, &i.Notes, &i.Status, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &i, nil
}

// ListAll lista todas las líneas de pedido.
func (r *OrderItemRepo) ListAll() ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, quantity, unit_price, tax_rate, notes, status, created_at
		FROM order_items ORDER BY created_at`
	return r.queryItems(query)
}

// ListByOrderID lista las líneas de un pedido.
func (r *OrderItemRepo) ListByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, quantity, unit_price, tax_rate, notes, status, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at`
	return r.queryItems(query, orderID)
}

func (r *OrderItemRepo) queryItems(query string, args ...any) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var i entity.OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.MenuItemID, &i.Quantity, &i.UnitPrice,
			&i.TaxRate, &i.Notes, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una línea de pedido existente.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET quantity = $2, unit_price = $3, tax_rate = $4, notes = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.TaxRate, item.Notes, item.Status,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// Delete elimina físicamente la línea; devuelve false si no existía.
func (r *OrderItemRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

var _ repository.KitchenTicketRepository = (*KitchenTicketRepo)(nil)

// KitchenTicketRepo implementación del puerto KitchenTicketRepository sobre PostgreSQL.
type KitchenTicketRepo struct {
	q Querier
}

// NewKitchenTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKitchenTicketRepository(q Querier) *KitchenTicketRepo {
	return &KitchenTicketRepo{q: q}
}

// Create persiste una nueva comanda.
func (r *KitchenTicketRepo) Create(ticket *entity.KitchenTicket) error {
	query := `
		INSERT INTO kitchen_tickets (id, order_id, printed, priority, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.OrderID, ticket.Printed, ticket.Priority, ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kitchen ticket: %w", err)
	}
	return nil
}

// GetByID obtiene una comanda por ID.
func (r *KitchenTicketRepo) GetByID(id string) (*entity.KitchenTicket, error) {
	query := `
		SELECT id, order_id, printed, priority, created_at
		FROM kitchen_tickets WHERE id = $1`
	var t entity.KitchenTicket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.OrderID, &t.Printed, &t.Priority, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kitchen ticket: %w", err)
	}
	return &t, nil
}

// ListAll lista todas las comandas, prioridad más alta primero.
func (r *KitchenTicketRepo) ListAll() ([]*entity.KitchenTicket, error) {
	query := `
		SELECT id, order_id, printed, priority, created_at
		FROM kitchen_tickets ORDER BY priority DESC, created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list kitchen tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.KitchenTicket
	for rows.Next() {
		var t entity.KitchenTicket
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Printed, &t.Priority, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan kitchen ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una comanda existente.
func (r *KitchenTicketRepo) Update(ticket *entity.KitchenTicket) error {
	query := `
		UPDATE kitchen_tickets SET printed = $2, priority = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, ticket.ID, ticket.Printed, ticket.Priority)
	if err != nil {
		return fmt.Errorf("update kitchen ticket: %w", err)
	}
	return nil
}

// Delete elimina físicamente la comanda; devuelve false si no existía.
func (r *KitchenTicketRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM kitchen_tickets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete kitchen ticket: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
