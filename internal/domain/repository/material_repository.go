package repository

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
// La cantidad solo se modifica con AdjustQuantity; Update nunca la toca.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	AdjustQuantity(ctx context.Context, id string, delta int64) error
	Delete(ctx context.Context, id string) error
}
