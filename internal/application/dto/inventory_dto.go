package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest entrada para crear un insumo de inventario.
type CreateInventoryRequest struct {
	ItemName     string           `json:"item_name" validate:"required,max=255"`
	SKU          *string          `json:"sku"`
	Unit         string           `json:"unit" validate:"required,max=20"`
	Quantity     *decimal.Decimal `json:"quantity"`
	MinimumStock *decimal.Decimal `json:"minimum_stock"`
}

// UpdateInventoryRequest actualización parcial de un insumo.
type UpdateInventoryRequest struct {
	ItemName     *string          `json:"item_name"`
	SKU          *string          `json:"sku"`
	Unit         *string          `json:"unit"`
	Quantity     *decimal.Decimal `json:"quantity"`
	MinimumStock *decimal.Decimal `json:"minimum_stock"`
}

// InventoryResponse salida de un insumo.
type InventoryResponse struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	SKU          *string         `json:"sku"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	IsActive     bool            `json:"is_active"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// CreateRecipeItemRequest entrada para asociar un insumo a un ítem del menú.
type CreateRecipeItemRequest struct {
	MenuItemID  string          `json:"menu_item_id" validate:"required,uuid"`
	InventoryID string          `json:"inventory_id" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Unit        *string         `json:"unit"`
}

// UpdateRecipeItemRequest actualización parcial de una línea de receta.
type UpdateRecipeItemRequest struct {
	MenuItemID  *string          `json:"menu_item_id"`
	InventoryID *string          `json:"inventory_id"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        *string          `json:"unit"`
}

// RecipeItemResponse salida de una línea de receta.
type RecipeItemResponse struct {
	ID          string          `json:"id"`
	MenuItemID  string          `json:"menu_item_id"`
	InventoryID string          `json:"inventory_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        *string         `json:"unit"`
	IsActive    bool            `json:"is_active"`
}
