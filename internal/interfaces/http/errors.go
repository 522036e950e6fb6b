package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/schedule"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/fleet"
	sched "github.com/jhoicas/frota-api/internal/domain/schedule"
)

// writeError traduce errores de dominio a respuestas HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var (
		batchErr    *schedule.BatchError
		conflictErr *sched.ConflictError
		plateErr    *fleet.DuplicatePlateError
		validErr    *domain.ValidationError
	)
	switch {
	case errors.As(err, &batchErr):
		details := dto.BatchFailureDetails{Committed: batchErr.Committed, FailedID: batchErr.FailedID}
		status := fiber.StatusInternalServerError
		if errors.As(batchErr.Err, &conflictErr) {
			d := conflictDetails(conflictErr)
			details.Conflict = &d
			status = fiber.StatusConflict
		} else {
			logInternal(c, err)
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "BATCH_INTERRUPTED", Message: "edición en lote interrumpida", Details: details})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SCHEDULE_CONFLICT", Message: conflictErr.Error(), Details: conflictDetails(conflictErr),
		})
	case errors.As(err, &plateErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE_PLATE", Message: plateErr.Error(),
			Details: dto.DuplicatePlateDetails{Plate: plateErr.Plate, Side: plateErr.Side},
		})
	case errors.As(err, &validErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: validErr.Message, Details: fiber.Map{"fields": validErr.Fields},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrVehicleInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VEHICLE_IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
	default:
		logInternal(c, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func conflictDetails(e *sched.ConflictError) dto.ScheduleConflictDetails {
	d := dto.ScheduleConflictDetails{VehiclePrefix: e.VehiclePrefix, Date: e.Date, ScheduleID: e.ScheduleID}
	if e.Existing != nil {
		d.Conflicting = schedule.ToResponse(e.Existing)
	}
	return d
}

func logInternal(c *fiber.Ctx, err error) {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("user_id", GetUserID(c)).
		Msg("error interno")
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
}
