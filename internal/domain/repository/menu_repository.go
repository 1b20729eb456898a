package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// MenuCategoryRepository define el puerto de persistencia para MenuCategory (DIP).
type MenuCategoryRepository interface {
	Create(category *entity.MenuCategory) error
	GetByID(id string) (*entity.MenuCategory, error)
	ListActive() ([]*entity.MenuCategory, error)
	Update(category *entity.MenuCategory) error
}

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	ListActive() ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
}
