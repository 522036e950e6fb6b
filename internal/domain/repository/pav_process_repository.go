package repository

import (
	"context"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// PavProcessRepository define el puerto de persistencia para procesos PAV.
type PavProcessRepository interface {
	Create(ctx context.Context, process *entity.PavProcess) error
	CreateMany(ctx context.Context, processes []*entity.PavProcess) error
	GetByID(ctx context.Context, id string) (*entity.PavProcess, error)
	List(ctx context.Context) ([]*entity.PavProcess, error)
	Update(ctx context.Context, process *entity.PavProcess) error
	Delete(ctx context.Context, id string) error
}
