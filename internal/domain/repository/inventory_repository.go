package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
type InventoryRepository interface {
	Create(item *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	ListActive() ([]*entity.Inventory, error)
	Update(item *entity.Inventory) error
}

// RecipeItemRepository define el puerto de persistencia para RecipeItem (DIP).
type RecipeItemRepository interface {
	Create(item *entity.RecipeItem) error
	GetByID(id string) (*entity.RecipeItem, error)
	ListActive() ([]*entity.RecipeItem, error)
	Update(item *entity.RecipeItem) error
}
