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

var _ repository.MenuCategoryRepository = (*MenuCategoryRepo)(nil)

// MenuCategoryRepo implementación del puerto MenuCategoryRepository sobre PostgreSQL.
type MenuCategoryRepo struct {
	q Querier
}

// NewMenuCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuCategoryRepository(q Querier) *MenuCategoryRepo {
	return &MenuCategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *MenuCategoryRepo) Create(category *entity.MenuCategory) error {
	query := `
		INSERT INTO menu_categories (id, name, description, sort_order, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.SortOrder,
		category.IsActive, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *MenuCategoryRepo) GetByID(id string) (*entity.MenuCategory, error) {
	query := `
		SELECT id, name, description, sort_order, is_active, created_at
		FROM menu_categories WHERE id = $1`
	var c entity.MenuCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu category: %w", err)
	}
	return &c, nil
}

// ListActive lista las categorías activas por orden de presentación.
func (r *MenuCategoryRepo) ListActive() ([]*entity.MenuCategory, error) {
	query := `
		SELECT id, name, description, sort_order, is_active, created_at
		FROM menu_categories WHERE is_active = TRUE ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuCategory
	for rows.Next() {
		var c entity.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *MenuCategoryRepo) Update(category *entity.MenuCategory) error {
	query := `
		UPDATE menu_categories SET name = $2, description = $3, sort_order = $4, is_active = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.SortOrder, category.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update menu category: %w", err)
	}
	return nil
}

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste un nuevo ítem del menú.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, code, name, description, category_id, price, tax_rate,
			is_available, requires_kitchen, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Description, item.CategoryID, item.Price,
		item.TaxRate, item.IsAvailable, item.RequiresKitchen, item.IsActive, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `
		SELECT id, code, name, description, category_id, price, tax_rate,
			is_available, requires_kitchen, is_active, created_at
		FROM menu_items WHERE id = $1`
	var i entity.MenuItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Code, &i.Name, &i.Description, &i.CategoryID, &i.Price,
		&i.TaxRate, &i.IsAvailable, &i.RequiresKitchen, &i.IsActive, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &i, nil
}

// ListActive lista los ítems activos ordenados por nombre.
func (r *MenuItemRepo) ListActive() ([]*entity.MenuItem, error) {
	query := `
		SELECT id, code, name, description, category_id, price, tax_rate,
			is_available, requires_kitchen, is_active, created_at
		FROM menu_items WHERE is_active = TRUE ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var i entity.MenuItem
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Description, &i.CategoryID, &i.Price,
			&i.TaxRate, &i.IsAvailable, &i.RequiresKitchen, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un ítem existente.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET code = $2, name = $3, description = $4, category_id = $5,
			price = $6, tax_rate = $7, is_available = $8, requires_kitchen = $9, is_active = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Description, item.CategoryID,
		item.Price, item.TaxRate, item.IsAvailable, item.RequiresKitchen, item.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}
