package repository

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// MovementFilter filtros opcionales del listado de movimientos.
type MovementFilter struct {
	MaterialID string
	Type       string
}

// MovementRepository define el puerto de persistencia para movimientos de stock.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	Delete(ctx context.Context, id string) error
}
