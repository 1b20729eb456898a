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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un nuevo insumo.
func (r *InventoryRepo) Create(item *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, item_name, sku, unit, quantity, minimum_stock, is_active, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.SKU, item.Unit, item.Quantity, item.MinimumStock,
		item.IsActive, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, item_name, sku, unit, quantity, minimum_stock, is_active, last_updated
		FROM inventory WHERE id = $1`
	var i entity.Inventory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ItemName, &i.SKU, &i.Unit, &i.Quantity, &i.MinimumStock, &i.IsActive, &i.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}

// ListActive lista los insumos activos ordenados por nombre.
func (r *InventoryRepo) ListActive() ([]*entity.Inventory, error) {
	query := `
		SELECT id, item_name, sku, unit, quantity, minimum_stock, is_active, last_updated
		FROM inventory WHERE is_active = TRUE ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var i entity.Inventory
		if err := rows.Scan(&i.ID, &i.ItemName, &i.SKU, &i.Unit, &i.Quantity, &i.MinimumStock,
			&i.IsActive, &i.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un insumo existente.
func (r *InventoryRepo) Update(item *entity.Inventory) error {
	query := `
		UPDATE inventory SET item_name = $2, sku = $3, unit = $4, quantity = $5,
			minimum_stock = $6, is_active = $7, last_updated = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.SKU, item.Unit, item.Quantity, item.MinimumStock,
		item.IsActive, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

var _ repository.RecipeItemRepository = (*RecipeItemRepo)(nil)

// RecipeItemRepo implementación del puerto RecipeItemRepository sobre PostgreSQL.
type RecipeItemRepo struct {
	q Querier
}

// NewRecipeItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeItemRepository(q Querier) *RecipeItemRepo {
	return &RecipeItemRepo{q: q}
}

// Create persiste una nueva línea de receta.
func (r *RecipeItemRepo) Create(item *entity.RecipeItem) error {
	query := `
		INSERT INTO recipe_items (id, menu_item_id, inventory_id, quantity, unit, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.MenuItemID, item.InventoryID, item.Quantity, item.Unit, item.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert recipe item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de receta por ID.
func (r *RecipeItemRepo) GetByID(id string) (*entity.RecipeItem, error) {
	query := `
		SELECT id, menu_item_id, inventory_id, quantity, unit, is_active
		FROM recipe_items WHERE id = $1`
	var item entity.RecipeItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.MenuItemID, &item.InventoryID, &item.Quantity, &item.Unit, &item.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe item: %w", err)
	}
	return &item, nil
}

// ListActive lista las líneas de receta activas.
func (r *RecipeItemRepo) ListActive() ([]*entity.RecipeItem, error) {
	query := `
		SELECT id, menu_item_id, inventory_id, quantity, unit, is_active
		FROM recipe_items WHERE is_active = TRUE`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list recipe items: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecipeItem
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.InventoryID, &item.Quantity,
			&item.Unit, &item.IsActive); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update actualiza una línea de receta existente.
func (r *RecipeItemRepo) Update(item *entity.RecipeItem) error {
	query := `
		UPDATE recipe_items SET menu_item_id = $2, inventory_id = $3, quantity = $4,
			unit = $5, is_active = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.MenuItemID, item.InventoryID, item.Quantity, item.Unit, item.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update recipe item: %w", err)
	}
	return nil
}
