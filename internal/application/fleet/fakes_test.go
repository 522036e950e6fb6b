package fleet_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memVehicleRepo struct {
	mu    sync.Mutex
	items map[string]entity.Vehicle
	// inUse prefijos con reservas asociadas.
	inUse map[string]bool
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{items: make(map[string]entity.Vehicle), inUse: make(map[string]bool)}
}

func (r *memVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cur := range r.items {
		if cur.Prefix == v.Prefix {
			return domain.ErrDuplicate
		}
	}
	r.items[v.ID] = *v
	return nil
}

func (r *memVehicleRepo) CreateMany(ctx context.Context, list []*entity.Vehicle) error {
	for _, v := range list {
		if err := r.Create(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *memVehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVehicleRepo) GetByPrefix(_ context.Context, prefix string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.Prefix == prefix {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (r *memVehicleRepo) List(_ context.Context) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out, nil
}

func (r *memVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[v.ID] = *v
	return nil
}

func (r *memVehicleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inUse[r.items[id].Prefix] {
		return domain.ErrVehicleInUse
	}
	delete(r.items, id)
	return nil
}

type memPavRepo struct {
	mu    sync.Mutex
	items []entity.PavProcess
}

func (r *memPavRepo) Create(_ context.Context, p *entity.PavProcess) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *p)
	return nil
}

func (r *memPavRepo) CreateMany(ctx context.Context, list []*entity.PavProcess) error {
	for _, p := range list {
		_ = r.Create(ctx, p)
	}
	return nil
}

func (r *memPavRepo) GetByID(_ context.Context, id string) (*entity.PavProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPavRepo) List(_ context.Context) ([]*entity.PavProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.PavProcess, 0, len(r.items))
	for _, p := range r.items {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *memPavRepo) Update(_ context.Context, p *entity.PavProcess) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
		}
	}
	return nil
}

func (r *memPavRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSubstitutionRepo struct {
	mu    sync.Mutex
	items []entity.FleetSubstitution
}

func (r *memSubstitutionRepo) Create(_ context.Context, s *entity.FleetSubstitution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *s)
	return nil
}

func (r *memSubstitutionRepo) CreateMany(ctx context.Context, list []*entity.FleetSubstitution) error {
	for _, s := range list {
		_ = r.Create(ctx, s)
	}
	return nil
}

func (r *memSubstitutionRepo) GetByID(_ context.Context, id string) (*entity.FleetSubstitution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSubstitutionRepo) List(_ context.Context) ([]*entity.FleetSubstitution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.FleetSubstitution, 0, len(r.items))
	for _, s := range r.items {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (r *memSubstitutionRepo) Update(_ context.Context, s *entity.FleetSubstitution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = *s
		}
	}
	return nil
}

func (r *memSubstitutionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
