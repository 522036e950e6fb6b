package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/schedule"
)

// ScheduleHandler agenda de viaturas (protegido).
// Un conflicto devuelve 409 SCHEDULE_CONFLICT con la reserva que choca; reenviar con force=true guarda igual.
type ScheduleHandler struct {
	uc      *schedule.UseCase
	reports *report.UseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *schedule.UseCase, reports *report.UseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, reports: reports}
}

// List godoc
// @Summary      Listar agenda
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        view    query  string  false  "FUTURE (por defecto) o ALL"
// @Param        date    query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "prefijo o conductor"
// @Success      200  {object}  dto.ScheduleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	var q dto.ScheduleListQuery
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
// @Summary      Crear reserva
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleRequest  true  "vehicle_prefix, start_date, start_hour, end_hour, driver_name, reason"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.ScheduleRequest
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
// @Summary      Editar reserva
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la reserva"
// @Param        body  body  dto.ScheduleRequest  true  "datos completos"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [put]
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	var in dto.ScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateBatch godoc
// @Summary      Crear la misma franja en varias fechas
// @Description  Si la hora de fin es menor o igual a la de inicio, la reserva termina al día siguiente.
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchScheduleRequest  true  "vehicle_prefix, dates, start_hour, end_hour, ..."
// @Success      201   {object}  dto.ScheduleBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/schedules/batch [post]
func (h *ScheduleHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.BatchScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBatch(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ReassignVehicle godoc
// @Summary      Cambiar la viatura de varias reservas
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReassignVehicleRequest  true  "ids, vehicle_prefix, force"
// @Success      200   {object}  dto.ScheduleBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/schedules/reassign-vehicle [post]
func (h *ScheduleHandler) ReassignVehicle(c *fiber.Ctx) error {
	var in dto.ReassignVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReassignVehicle(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReassignTime godoc
// @Summary      Cambiar el horario de varias reservas
// @Description  Cada reserva conserva su fecha; solo cambian las horas.
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReassignTimeRequest  true  "ids, start_hour, end_hour, force"
// @Success      200   {object}  dto.ScheduleBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/schedules/reassign-time [post]
func (h *ScheduleHandler) ReassignTime(c *fiber.Ctx) error {
	var in dto.ReassignTimeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReassignTime(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         schedules
// @Security     Bearer
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMany godoc
// @Summary      Eliminar varias reservas
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.IDsRequest  true  "ids"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedules/delete-many [post]
func (h *ScheduleHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.DeleteMany(c.Context(), in.IDs); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportXLSX godoc
// @Summary      Exportar agenda (.xlsx)
// @Tags         schedules
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        view    query  string  false  "FUTURE o ALL"
// @Param        date    query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "prefijo o conductor"
// @Success      200  {file}  file
// @Router       /api/schedules/export [get]
func (h *ScheduleHandler) ExportXLSX(c *fiber.Ctx) error {
	var q dto.ScheduleListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.SchedulesXLSX(c.Context(), q)
	return sendFile(c, f, err)
}

// ExportPDF godoc
// @Summary      Agenda en PDF
// @Tags         schedules
// @Security     Bearer
// @Produce      application/pdf
// @Param        view    query  string  false  "FUTURE o ALL"
// @Param        date    query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "prefijo o conductor"
// @Success      200  {file}  file
// @Router       /api/schedules/report [get]
func (h *ScheduleHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.ScheduleListQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	f, err := h.reports.SchedulesPDF(c.Context(), q)
	return sendFile(c, f, err)
}
