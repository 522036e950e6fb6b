package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// MaterialHandler catálogo de materiales del almacén (protegido).
type MaterialHandler struct {
	uc      *inventory.MaterialUseCase
	reports *report.UseCase
	reader  sheet.Reader
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *inventory.MaterialUseCase, reports *report.UseCase, reader sheet.Reader) *MaterialHandler {
	return &MaterialHandler{uc: uc, reports: reports, reader: reader}
}

// List godoc
// @Summary      Listar materiales
// @Description  Filtra por estado derivado (NONE, LOW, NORMAL) y busca en nombre o vehículos compatibles.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "ALL, NONE, LOW, NORMAL"
// @Param        search  query  string  false  "texto"
// @Param        sort    query  string  false  "name, quantity, status, unit"
// @Param        dir     query  string  false  "asc, desc"
// @Success      200  {object}  dto.MaterialListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var q dto.MaterialListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear material
// @Description  El material nace con cantidad 0; la cantidad solo cambia con movimientos.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, unit, compatible_vehicles"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "name, unit, compatible_vehicles"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
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
// @Summary      Eliminar material
// @Description  Elimina también sus movimientos.
// @Tags         materials
// @Security     Bearer
// @Param        id  path  string  true  "ID del material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar materiales desde planilla
// @Description  Cada fila crea un material en 0 y una ENTRADA por la cantidad informada.
// @Tags         materials
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla .xlsx"
// @Success      201   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/import [post]
func (h *MaterialHandler) Import(c *fiber.Ctx) error {
	return importWith(c, h.reader, func(rows [][]string) (*dto.ImportResult, error) {
		return h.uc.Import(c.Context(), rows)
	})
}

// Export godoc
// @Summary      Exportar estoque (.xlsx)
// @Tags         materials
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "ALL, NONE, LOW, NORMAL"
// @Param        search  query  string  false  "texto"
// @Success      200  {file}  file
// @Router       /api/materials/export [get]
func (h *MaterialHandler) Export(c *fiber.Ctx) error {
	var q dto.MaterialListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.MaterialsXLSX(c.Context(), q)
	return sendFile(c, f, err)
}
