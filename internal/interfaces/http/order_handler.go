package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order, incluida la vista de cocina (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CreatedBy == nil {
		if id := GetUserID(c); id != "" {
			in.CreatedBy = &id
		}
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un pedido con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListKitchen godoc
// @Summary      Listar pedidos pendientes de cocina (pending, confirmed, seated)
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /kitchen/orders [get]
func (h *OrderHandler) ListKitchen(c *fiber.Ctx) error {
	out, err := h.uc.ListKitchen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un pedido (vista de cocina)
// @Tags         kitchen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /kitchen/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (borrado físico)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// OrderItemHandler maneja las peticiones HTTP para OrderItem (protegido).
type OrderItemHandler struct {
	uc *usecase.OrderItemUseCase
}

// NewOrderItemHandler construye el handler.
func NewOrderItemHandler(uc *usecase.OrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{uc: uc}
}

// Create godoc
// @Summary      Añadir línea a un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderItemRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.OrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /order-items [post]
func (h *OrderItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" || in.MenuItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id y menu_item_id son requeridos"})
	}
	if in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser mayor que cero"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar líneas de pedido (filtro opcional por order_id)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        order_id  query  string  false  "ID del pedido"
// @Success      200  {array}  dto.OrderItemResponse
// @Router       /order-items [get]
func (h *OrderItemHandler) List(c *fiber.Ctx) error {
	orderID := c.Query("order_id")
	var out []dto.OrderItemResponse
	var err error
	if orderID != "" {
		out, err = h.uc.ListByOrder(orderID)
	} else {
		out, err = h.uc.List()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea de pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.OrderItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /order-items/{id} [get]
func (h *OrderItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de pedido no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar línea de pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateOrderItemRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.OrderItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /order-items/{id} [put]
func (h *OrderItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de pedido no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea de pedido (borrado físico)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.OrderItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /order-items/{id} [delete]
func (h *OrderItemHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de pedido no encontrada"})
	}
	return c.JSON(out)
}

// KitchenTicketHandler maneja las peticiones HTTP para KitchenTicket (protegido).
type KitchenTicketHandler struct {
	uc *usecase.KitchenTicketUseCase
}

// NewKitchenTicketHandler construye el handler.
func NewKitchenTicketHandler(uc *usecase.KitchenTicketUseCase) *KitchenTicketHandler {
	return &KitchenTicketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comanda de cocina
// @Tags         kitchen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKitchenTicketRequest  true  "Datos de la comanda"
// @Success      201   {object}  dto.KitchenTicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /kitchen-tickets [post]
func (h *KitchenTicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKitchenTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar comandas
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.KitchenTicketResponse
// @Router       /kitchen-tickets [get]
func (h *KitchenTicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comanda por ID
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la comanda"
// @Success      200  {object}  dto.KitchenTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /kitchen-tickets/{id} [get]
func (h *KitchenTicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comanda no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar comanda
// @Tags         kitchen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la comanda"
// @Param        body  body  dto.UpdateKitchenTicketRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.KitchenTicketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /kitchen-tickets/{id} [put]
func (h *KitchenTicketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKitchenTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comanda no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comanda (borrado físico)
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la comanda"
// @Success      200  {object}  dto.KitchenTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /kitchen-tickets/{id} [delete]
func (h *KitchenTicketHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comanda no encontrada"})
	}
	return c.JSON(out)
}
