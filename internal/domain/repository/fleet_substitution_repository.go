package repository

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// FleetSubstitutionRepository define el puerto de persistencia para sustituciones de flota.
type FleetSubstitutionRepository interface {
	Create(ctx context.Context, s *entity.FleetSubstitution) error
	CreateMany(ctx context.Context, list []*entity.FleetSubstitution) error
	GetByID(ctx context.Context, id string) (*entity.FleetSubstitution, error)
	List(ctx context.Context) ([]*entity.FleetSubstitution, error)
	Update(ctx context.Context, s *entity.FleetSubstitution) error
	Delete(ctx context.Context, id string) error
}
