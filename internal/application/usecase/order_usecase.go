package usecase

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// newOrderCode genera un código corto legible y ordenable por tiempo.
func newOrderCode() string {
	return "ORD-" + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// OrderUseCase casos de uso CRUD para pedidos (borrado físico) y las
// operaciones de la vista de cocina.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea un pedido. Sin order_code se genera uno; sin status queda "pending".
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		OrderCode:  in.OrderCode,
		TableID:    in.TableID,
		CustomerID: in.CustomerID,
		CreatedBy:  in.CreatedBy,
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if order.OrderCode == nil || *order.OrderCode == "" {
		code := newOrderCode()
		order.OrderCode = &code
	}
	if in.Status != nil && *in.Status != "" {
		order.Status = *in.Status
	}
	if in.IsTakeaway != nil {
		order.IsTakeaway = *in.IsTakeaway
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista todos los pedidos.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// ListKitchen lista los pedidos pendientes de cocina (pending, confirmed, seated).
func (uc *OrderUseCase) ListKitchen() ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByStatuses(entity.KitchenOrderStatuses)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido por ID, o nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Update aplica una actualización parcial y refresca UpdatedAt.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.TableID != nil {
		order.TableID = in.TableID
	}
	if in.CustomerID != nil {
		order.CustomerID = in.CustomerID
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.IsTakeaway != nil {
		order.IsTakeaway = *in.IsTakeaway
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia solo el estado del pedido (vista de cocina).
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina el pedido (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *OrderUseCase) Delete(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		OrderCode:  o.OrderCode,
		TableID:    o.TableID,
		CustomerID: o.CustomerID,
		CreatedBy:  o.CreatedBy,
		Status:     o.Status,
		IsTakeaway: o.IsTakeaway,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// OrderItemUseCase casos de uso CRUD para líneas de pedido (borrado físico).
type OrderItemUseCase struct {
	repo repository.OrderItemRepository
}

// NewOrderItemUseCase construye el caso de uso.
func NewOrderItemUseCase(repo repository.OrderItemRepository) *OrderItemUseCase {
	return &OrderItemUseCase{repo: repo}
}

// Create añade una línea a un pedido con el precio capturado en ese momento.
func (uc *OrderItemUseCase) Create(in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	item := &entity.OrderItem{
		ID:         uuid.New().String(),
		OrderID:    in.OrderID,
		MenuItemID: in.MenuItemID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TaxRate:    decimal.Zero,
		Notes:      in.Notes,
		Status:     "pending",
		CreatedAt:  time.Now(),
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	}
	if in.Status != nil && *in.Status != "" {
		item.Status = *in.Status
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// List lista todas las líneas de pedido.
func (uc *OrderItemUseCase) List() ([]dto.OrderItemResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toOrderItemResponse(i))
	}
	return out, nil
}

// ListByOrder lista las líneas de un pedido.
func (uc *OrderItemUseCase) ListByOrder(orderID string) ([]dto.OrderItemResponse, error) {
	list, err := uc.repo.ListByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toOrderItemResponse(i))
	}
	return out, nil
}

// GetByID obtiene una línea por ID, o nil si no existe.
func (uc *OrderItemUseCase) GetByID(id string) (*dto.OrderItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toOrderItemResponse(item), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *OrderItemUseCase) Update(id string, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	}
	if in.Notes != nil {
		item.Notes = in.Notes
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// Delete elimina la línea (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *OrderItemUseCase) Delete(id string) (*dto.OrderItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

func toOrderItemResponse(i *entity.OrderItem) *dto.OrderItemResponse {
	if i == nil {
		return nil
	}
	return &dto.OrderItemResponse{
		ID:         i.ID,
		OrderID:    i.OrderID,
		MenuItemID: i.MenuItemID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TaxRate:    i.TaxRate,
		Notes:      i.Notes,
		Status:     i.Status,
		CreatedAt:  i.CreatedAt,
	}
}

// KitchenTicketUseCase casos de uso CRUD para comandas de cocina (borrado físico).
type KitchenTicketUseCase struct {
	repo repository.KitchenTicketRepository
}

// NewKitchenTicketUseCase construye el caso de uso.
func NewKitchenTicketUseCase(repo repository.KitchenTicketRepository) *KitchenTicketUseCase {
	return &KitchenTicketUseCase{repo: repo}
}

// Create crea una comanda.
func (uc *KitchenTicketUseCase) Create(in dto.CreateKitchenTicketRequest) (*dto.KitchenTicketResponse, error) {
	ticket := &entity.KitchenTicket{
		ID:        uuid.New().String(),
		OrderID:   in.OrderID,
		CreatedAt: time.Now(),
	}
	if in.Printed != nil {
		ticket.Printed = *in.Printed
	}
	if in.Priority != nil {
		ticket.Priority = *in.Priority
	}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return toKitchenTicketResponse(ticket), nil
}

// List lista todas las comandas.
func (uc *KitchenTicketUseCase) List() ([]dto.KitchenTicketResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.KitchenTicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toKitchenTicketResponse(t))
	}
	return out, nil
}

// GetByID obtiene una comanda por ID, o nil si no existe.
func (uc *KitchenTicketUseCase) GetByID(id string) (*dto.KitchenTicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	return toKitchenTicketResponse(ticket), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *KitchenTicketUseCase) Update(id string, in dto.UpdateKitchenTicketRequest) (*dto.KitchenTicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	if in.Printed != nil {
		ticket.Printed = *in.Printed
	}
	if in.Priority != nil {
		ticket.Priority = *in.Priority
	}
	if err := uc.repo.Update(ticket); err != nil {
		return nil, err
	}
	return toKitchenTicketResponse(ticket), nil
}

// Delete elimina la comanda (borrado físico) y devuelve lo eliminado, o nil
// si no existe.
func (uc *KitchenTicketUseCase) Delete(id string) (*dto.KitchenTicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toKitchenTicketResponse(ticket), nil
}

func toKitchenTicketResponse(t *entity.KitchenTicket) *dto.KitchenTicketResponse {
	if t == nil {
		return nil
	}
	return &dto.KitchenTicketResponse{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Printed:   t.Printed,
		Priority:  t.Priority,
		CreatedAt: t.CreatedAt,
	}
}
