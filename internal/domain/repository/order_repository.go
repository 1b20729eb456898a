package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListAll() ([]*entity.Order, error)
	// ListByStatuses devuelve las órdenes cuyo status está en el conjunto dado
	// (vista de cocina).
	ListByStatuses(statuses []string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) (bool, error)
}

// OrderItemRepository define el puerto de persistencia para OrderItem (DIP).
type OrderItemRepository interface {
	Create(item *entity.OrderItem) error
	GetByID(id string) (*entity.OrderItem, error)
	ListAll() ([]*entity.OrderItem, error)
	ListByOrderID(orderID string) ([]*entity.OrderItem, error)
	Update(item *entity.OrderItem) error
	Delete(id string) (bool, error)
}

// KitchenTicketRepository define el puerto de persistencia para KitchenTicket (DIP).
type KitchenTicketRepository interface {
	Create(ticket *entity.KitchenTicket) error
	GetByID(id string) (*entity.KitchenTicket, error)
	ListAll() ([]*entity.KitchenTicket, error)
	Update(ticket *entity.KitchenTicket) error
	Delete(id string) (bool, error)
}
