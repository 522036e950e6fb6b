package schedule

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción que mantiene un bloqueo exclusivo por cada prefijo de viatura.
// Dos escritores sobre la misma viatura se serializan: la verificación de conflicto y la escritura
// quedan dentro del mismo bloqueo.
type TxRunner interface {
	Run(ctx context.Context, vehiclePrefixes []string, fn func(
		scheduleRepo repository.ScheduleRepository,
		vehicleRepo repository.VehicleRepository,
	) error) error
}
