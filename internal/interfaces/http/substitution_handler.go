package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// SubstitutionHandler sustituciones de flota (protegido).
// Una placa repetida devuelve 409 DUPLICATE_PLATE salvo que el cuerpo traiga force=true.
type SubstitutionHandler struct {
	uc      *fleet.SubstitutionUseCase
	reports *report.UseCase
	reader  sheet.Reader
}

// NewSubstitutionHandler construye el handler.
func NewSubstitutionHandler(uc *fleet.SubstitutionUseCase, reports *report.UseCase, reader sheet.Reader) *SubstitutionHandler {
	return &SubstitutionHandler{uc: uc, reports: reports, reader: reader}
}

// List godoc
// @Summary      Listar sustituciones
// @Tags         substitutions
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "prefijo, placa o BGPM"
// @Param        city    query  string  false  "ciudad"
// @Param        unit    query  string  false  "unidad"
// @Param        status  query  string  false  "ALL, DONE, PENDING, NOT_REQUIRED"
// @Success      200  {object}  dto.SubstitutionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/substitutions [get]
func (h *SubstitutionHandler) List(c *fiber.Ctx) error {
	var q dto.SubstitutionListQuery
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
// @Summary      Crear sustitución
// @Tags         substitutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubstitutionRequest  true  "viatura recibida e indicada"
// @Success      201   {object}  dto.SubstitutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/substitutions [post]
func (h *SubstitutionHandler) Create(c *fiber.Ctx) error {
	var in dto.SubstitutionRequest
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
// @Summary      Editar sustitución
// @Tags         substitutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la sustitución"
// @Param        body  body  dto.SubstitutionRequest  true  "datos completos"
// @Success      200   {object}  dto.SubstitutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/substitutions/{id} [put]
func (h *SubstitutionHandler) Update(c *fiber.Ctx) error {
	var in dto.SubstitutionRequest
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
// @Summary      Eliminar sustitución
// @Tags         substitutions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la sustitución"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/substitutions/{id} [delete]
func (h *SubstitutionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar sustituciones desde planilla
// @Tags         substitutions
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla .xlsx"
// @Success      201   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/substitutions/import [post]
func (h *SubstitutionHandler) Import(c *fiber.Ctx) error {
	return importWith(c, h.reader, func(rows [][]string) (*dto.ImportResult, error) {
		return h.uc.Import(c.Context(), rows)
	})
}

// Export godoc
// @Summary      Exportar sustituciones (.xlsx)
// @Tags         substitutions
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "texto"
// @Param        city    query  string  false  "ciudad"
// @Param        unit    query  string  false  "unidad"
// @Param        status  query  string  false  "ALL, DONE, PENDING, NOT_REQUIRED"
// @Success      200  {file}  file
// @Router       /api/substitutions/export [get]
func (h *SubstitutionHandler) Export(c *fiber.Ctx) error {
	var q dto.SubstitutionListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.SubstitutionsXLSX(c.Context(), q)
	return sendFile(c, f, err)
}
