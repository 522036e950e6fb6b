package schedule

import (
	"fmt"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// IntervalOf ventana de una reserva persistida.
func IntervalOf(s *entity.VehicleSchedule) Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// FindConflict recorre las reservas en el orden recibido y devuelve la primera de la misma viatura
// que se superpone con candidate. excludeID se salta (una reserva no choca consigo misma en una edición).
// nil significa sin conflicto. No tiene efectos secundarios.
func FindConflict(existing []*entity.VehicleSchedule, vehiclePrefix string, candidate Interval, excludeID string) *entity.VehicleSchedule {
	for _, s := range existing {
		if s == nil || s.VehiclePrefix != vehiclePrefix {
			continue
		}
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if candidate.Overlaps(IntervalOf(s)) {
			return s
		}
	}
	return nil
}

// ConflictError aviso accionable: la reserva choca con Existing. El llamador puede reintentar con force.
type ConflictError struct {
	VehiclePrefix string
	Date          string // fecha en conflicto en modo lote; vacío en alta o edición simple
	ScheduleID    string // reserva editada en modo lote; vacío en altas
	Candidate     Interval
	Existing      *entity.VehicleSchedule
}

func (e *ConflictError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("conflicto de agenda para %s en %s", e.VehiclePrefix, e.Date)
	}
	return fmt.Sprintf("conflicto de agenda para %s", e.VehiclePrefix)
}

// Is permite errors.Is(err, domain.ErrConflict).
func (e *ConflictError) Is(target error) bool {
	return target == domain.ErrConflict
}
