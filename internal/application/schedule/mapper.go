package schedule

import (
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// ToResponse convierte la reserva en su DTO de salida.
func ToResponse(s *entity.VehicleSchedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:            s.ID,
		VehiclePrefix: s.VehiclePrefix,
		DriverName:    s.DriverName,
		Reason:        s.Reason,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Observations:  s.Observations,
		CreatedAt:     s.CreatedAt,
	}
}

func toResponses(list []*entity.VehicleSchedule) []dto.ScheduleResponse {
	out := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToResponse(s))
	}
	return out
}
