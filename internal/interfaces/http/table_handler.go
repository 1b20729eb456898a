package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
)

// TableHandler maneja el ciclo de vida de mesas: CRUD compuesto mesa+estado
// y el cambio de estado por mesa.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mesa (estado inicial "free")
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTableRequest  true  "code, seats, location"
// @Success      201   {object}  dto.TableWithStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /tables [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	if in.Seats <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seats debe ser mayor que cero"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una mesa con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mesas con su estado actual
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TableWithStatusResponse
// @Router       /tables [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mesa por ID con su estado
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.TableWithStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tables/{id} [get]
func (h *TableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos de una mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mesa"
// @Param        body  body  dto.UpdateTableRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.TableWithStatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tables/{id} [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una mesa con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mesa"
// @Param        body  body  dto.UpdateTableStatusRequest  true  "status"
// @Success      200   {object}  dto.TableWithStatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tables/{id}/status [patch]
func (h *TableHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTableStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	var updatedBy *string
	if id := GetUserID(c); id != "" {
		updatedBy = &id
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status, updatedBy)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una mesa y su estado
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.TableWithStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tables/{id} [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}
