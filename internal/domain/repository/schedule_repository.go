package repository

import (
	"context"
	"time"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// ScheduleRepository define el puerto de persistencia para reservas de viaturas.
type ScheduleRepository interface {
	// CreateMany inserta todas las reservas en un solo lote.
	CreateMany(ctx context.Context, schedules []*entity.VehicleSchedule) error
	GetByID(ctx context.Context, id string) (*entity.VehicleSchedule, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.VehicleSchedule, error)
	// ListByVehicle reservas de una viatura ordenadas por inicio.
	ListByVehicle(ctx context.Context, vehiclePrefix string) ([]*entity.VehicleSchedule, error)
	List(ctx context.Context) ([]*entity.VehicleSchedule, error)
	Update(ctx context.Context, schedule *entity.VehicleSchedule) error
	// UpdateVehicle cambia solo la viatura de la reserva.
	UpdateVehicle(ctx context.Context, id, vehiclePrefix string) error
	// UpdateWindow cambia solo inicio y fin de la reserva.
	UpdateWindow(ctx context.Context, id string, start, end time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
