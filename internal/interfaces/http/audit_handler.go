package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
)

// AuditLogHandler maneja las peticiones HTTP para AuditLog (protegido).
type AuditLogHandler struct {
	uc *usecase.AuditLogUseCase
}

// NewAuditLogHandler construye el handler.
func NewAuditLogHandler(uc *usecase.AuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de auditoría
// @Tags         audit
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditLogRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.AuditLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /audit-logs [post]
func (h *AuditLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Entity == "" || in.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entity y action son requeridos"})
	}
	if in.PerformedBy == nil {
		if id := GetUserID(c); id != "" {
			in.PerformedBy = &id
		}
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas de auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /audit-logs [get]
func (h *AuditLogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de auditoría por ID
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.AuditLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /audit-logs/{id} [get]
func (h *AuditLogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada de auditoría no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir entrada de auditoría
// @Tags         audit
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateAuditLogRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.AuditLogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /audit-logs/{id} [put]
func (h *AuditLogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAuditLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada de auditoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de auditoría (borrado físico)
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.AuditLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /audit-logs/{id} [delete]
func (h *AuditLogHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada de auditoría no encontrada"})
	}
	return c.JSON(out)
}
