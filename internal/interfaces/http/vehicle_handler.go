package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// VehicleHandler flota disponible (protegido).
type VehicleHandler struct {
	uc      *fleet.VehicleUseCase
	reports *report.UseCase
	reader  sheet.Reader
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *fleet.VehicleUseCase, reports *report.UseCase, reader sheet.Reader) *VehicleHandler {
	return &VehicleHandler{uc: uc, reports: reports, reader: reader}
}

// List godoc
// @Summary      Listar viaturas
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "prefijo o placa"
// @Success      200  {object}  dto.VehicleListResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	var q dto.VehicleListQuery
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
// @Summary      Crear viatura
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VehicleRequest  true  "prefix, plate, model, fraction"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.VehicleRequest
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
// @Summary      Editar viatura
// @Description  Un cambio de prefijo se propaga a la agenda.
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la viatura"
// @Param        body  body  dto.VehicleRequest  true  "prefix, plate, model, fraction"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.VehicleRequest
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
// @Summary      Eliminar viatura
// @Description  Falla con 409 VEHICLE_IN_USE si tiene reservas.
// @Tags         vehicles
// @Security     Bearer
// @Param        id  path  string  true  "ID de la viatura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar viaturas desde planilla
// @Tags         vehicles
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla .xlsx"
// @Success      201   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vehicles/import [post]
func (h *VehicleHandler) Import(c *fiber.Ctx) error {
	return importWith(c, h.reader, func(rows [][]string) (*dto.ImportResult, error) {
		return h.uc.Import(c.Context(), rows)
	})
}

// Export godoc
// @Summary      Exportar mapa carga (.xlsx)
// @Tags         vehicles
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "prefijo o placa"
// @Success      200  {file}  file
// @Router       /api/vehicles/export [get]
func (h *VehicleHandler) Export(c *fiber.Ctx) error {
	var q dto.VehicleListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.VehiclesXLSX(c.Context(), q)
	return sendFile(c, f, err)
}
