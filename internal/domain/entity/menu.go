package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory agrupa ítems del menú (entradas, platos fuertes, bebidas...).
type MenuCategory struct {
	ID          string
	Name        string // único
	Description *string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
}

// MenuItem es un plato o producto vendible del menú.
type MenuItem struct {
	ID              string
	Code            *string // único cuando existe
	Name            string
	Description     *string
	CategoryID      *string
	Price           decimal.Decimal
	TaxRate         decimal.Decimal
	IsAvailable     bool
	RequiresKitchen bool
	IsActive        bool
	CreatedAt       time.Time
}
