package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/application/report"
)

// MovementHandler entradas y salidas de stock (protegido).
type MovementHandler struct {
	uc      *inventory.MovementUseCase
	reports *report.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase, reports *report.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc, reports: reports}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        material_id  query  string  false  "ID del material"
// @Param        type         query  string  false  "ENTRADA o SAIDA"
// @Param        search       query  string  false  "material, responsable, prefijo o guía"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  ENTRADA suma y SAIDA resta de la cantidad del material en la misma transacción.
// @Description  En salidas requester y vehicle_prefix son obligatorios.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "material_id, type, quantity, ..."
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar movimiento
// @Description  Revierte el efecto anterior y aplica el nuevo (también si cambia el material).
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del movimiento"
// @Param        body  body  dto.RegisterMovementRequest  true  "datos completos"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Revierte su efecto sobre la cantidad del material.
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportXLSX godoc
// @Summary      Exportar movimentações (.xlsx)
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        material_id  query  string  false  "ID del material"
// @Param        type         query  string  false  "ENTRADA o SAIDA"
// @Success      200  {file}  file
// @Router       /api/movements/export [get]
func (h *MovementHandler) ExportXLSX(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.MovementsXLSX(c.Context(), q)
	return sendFile(c, f, err)
}

// ExportPDF godoc
// @Summary      Relatório de movimentações (.pdf)
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        material_id  query  string  false  "ID del material"
// @Param        type         query  string  false  "ENTRADA o SAIDA"
// @Success      200  {file}  file
// @Router       /api/movements/report [get]
func (h *MovementHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.MovementsPDF(c.Context(), q)
	return sendFile(c, f, err)
}
