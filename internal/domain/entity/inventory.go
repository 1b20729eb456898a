package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory es un insumo de bodega (materia prima, no vendible directamente).
type Inventory struct {
	ID           string
	ItemName     string
	SKU          *string // único cuando existe
	Unit         string  // kg, g, l, unidad...
	Quantity     decimal.Decimal
	MinimumStock decimal.Decimal
	IsActive     bool
	LastUpdated  time.Time
}

// RecipeItem asocia un insumo de inventario a un ítem del menú con su cantidad.
type RecipeItem struct {
	ID          string
	MenuItemID  string
	InventoryID string
	Quantity    decimal.Decimal
	Unit        *string
	IsActive    bool
}
