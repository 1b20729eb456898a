package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuCategoryRequest entrada para crear una categoría del menú.
type CreateMenuCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// UpdateMenuCategoryRequest actualización parcial de una categoría.
type UpdateMenuCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// MenuCategoryResponse salida de una categoría.
type MenuCategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMenuItemRequest entrada para crear un ítem del menú.
type CreateMenuItemRequest struct {
	Code            *string          `json:"code"`
	Name            string           `json:"name" validate:"required,max=255"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"category_id" validate:"omitempty,uuid"`
	Price           decimal.Decimal  `json:"price" validate:"required"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
	IsAvailable     *bool            `json:"is_available"`
	RequiresKitchen *bool            `json:"requires_kitchen"`
}

// UpdateMenuItemRequest actualización parcial de un ítem del menú.
type UpdateMenuItemRequest struct {
	Code            *string          `json:"code"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"category_id"`
	Price           *decimal.Decimal `json:"price"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
	IsAvailable     *bool            `json:"is_available"`
	RequiresKitchen *bool            `json:"requires_kitchen"`
}

// MenuItemResponse salida de un ítem del menú.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	Code            *string         `json:"code"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	CategoryID      *string         `json:"category_id"`
	Price           decimal.Decimal `json:"price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	IsAvailable     bool            `json:"is_available"`
	RequiresKitchen bool            `json:"requires_kitchen"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}
