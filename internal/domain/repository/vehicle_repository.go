package repository

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para la flota.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	CreateMany(ctx context.Context, vehicles []*entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	GetByPrefix(ctx context.Context, prefix string) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id string) error
}
