package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// PavHandler procesos PAV de siniestros (protegido).
type PavHandler struct {
	uc      *fleet.PavUseCase
	reports *report.UseCase
	reader  sheet.Reader
}

// NewPavHandler construye el handler.
func NewPavHandler(uc *fleet.PavUseCase, reports *report.UseCase, reader sheet.Reader) *PavHandler {
	return &PavHandler{uc: uc, reports: reports, reader: reader}
}

// List godoc
// @Summary      Listar procesos PAV
// @Tags         pav
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "prefijo, placa, REDS, PAV o encargado"
// @Param        status    query  string  false  "ALL, SENT, PENDING"
// @Param        fraction  query  string  false  "fracción"
// @Success      200  {object}  dto.PavProcessListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pav [get]
func (h *PavHandler) List(c *fiber.Ctx) error {
	var q dto.PavListQuery
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
// @Summary      Crear proceso PAV
// @Tags         pav
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PavProcessRequest  true  "datos del proceso"
// @Success      201   {object}  dto.PavProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pav [post]
func (h *PavHandler) Create(c *fiber.Ctx) error {
	var in dto.PavProcessRequest
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
// @Summary      Editar proceso PAV
// @Tags         pav
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del proceso"
// @Param        body  body  dto.PavProcessRequest  true  "datos completos"
// @Success      200   {object}  dto.PavProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pav/{id} [put]
func (h *PavHandler) Update(c *fiber.Ctx) error {
	var in dto.PavProcessRequest
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
// @Summary      Eliminar proceso PAV
// @Tags         pav
// @Security     Bearer
// @Param        id  path  string  true  "ID del proceso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pav/{id} [delete]
func (h *PavHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar procesos PAV desde planilla
// @Tags         pav
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla .xlsx"
// @Success      201   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pav/import [post]
func (h *PavHandler) Import(c *fiber.Ctx) error {
	return importWith(c, h.reader, func(rows [][]string) (*dto.ImportResult, error) {
		return h.uc.Import(c.Context(), rows)
	})
}

// ExportXLSX godoc
// @Summary      Exportar procesos PAV (.xlsx)
// @Tags         pav
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search    query  string  false  "texto"
// @Param        status    query  string  false  "ALL, SENT, PENDING"
// @Param        fraction  query  string  false  "fracción"
// @Success      200  {file}  file
// @Router       /api/pav/export [get]
func (h *PavHandler) ExportXLSX(c *fiber.Ctx) error {
	var q dto.PavListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.PavXLSX(c.Context(), q)
	return sendFile(c, f, err)
}

// ExportPDF godoc
// @Summary      Procesos PAV en PDF
// @Tags         pav
// @Security     Bearer
// @Produce      application/pdf
// @Param        search    query  string  false  "texto"
// @Param        status    query  string  false  "ALL, SENT, PENDING"
// @Param        fraction  query  string  false  "fracción"
// @Success      200  {file}  file
// @Router       /api/pav/report [get]
func (h *PavHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.PavListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.PavPDF(c.Context(), q)
	return sendFile(c, f, err)
}
