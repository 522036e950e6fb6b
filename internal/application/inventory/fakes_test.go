package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria: materiales + movimientos con rollback al fallar la tx
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	materials map[string]entity.Material
	movements map[string]entity.Movement
	// failAdjust fuerza un error en AdjustQuantity para probar el rollback.
	failAdjust error
}

func newMemStore() *memStore {
	return &memStore{
		materials: make(map[string]entity.Material),
		movements: make(map[string]entity.Movement),
	}
}

func (s *memStore) addMaterial(id, name string, qty int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[id] = entity.Material{ID: id, Name: name, Quantity: qty, Unit: entity.DefaultUnit}
}

func (s *memStore) quantity(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.materials[id].Quantity
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// Run implementa inventory.TxRunner: restaura el snapshot si fn falla.
func (s *memStore) Run(ctx context.Context, fn func(repository.MovementRepository, repository.MaterialRepository) error) error {
	s.mu.Lock()
	matSnap := make(map[string]entity.Material, len(s.materials))
	for k, v := range s.materials {
		matSnap[k] = v
	}
	movSnap := make(map[string]entity.Movement, len(s.movements))
	for k, v := range s.movements {
		movSnap[k] = v
	}
	s.mu.Unlock()

	if err := fn(&memMovementRepo{s: s}, &memMaterialRepo{s: s}); err != nil {
		s.mu.Lock()
		s.materials, s.movements = matSnap, movSnap
		s.mu.Unlock()
		return err
	}
	return nil
}

type memMaterialRepo struct{ s *memStore }

func (r *memMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.materials[m.ID] = *m
	return nil
}

func (r *memMaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.Material, error) {
	return r.GetByID(ctx, id)
}

func (r *memMaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Material, 0, len(r.s.materials))
	for _, m := range r.s.materials {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.materials[m.ID]
	if !ok {
		return errors.New("material inexistente")
	}
	cur.Name, cur.Unit, cur.CompatibleVehicles = m.Name, m.Unit, m.CompatibleVehicles
	r.s.materials[m.ID] = cur
	return nil
}

func (r *memMaterialRepo) AdjustQuantity(_ context.Context, id string, delta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failAdjust != nil {
		return r.s.failAdjust
	}
	cur, ok := r.s.materials[id]
	if !ok {
		return errors.New("material inexistente")
	}
	cur.Quantity += delta
	r.s.materials[id] = cur
	return nil
}

func (r *memMaterialRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.materials, id)
	for k, mov := range r.s.movements {
		if mov.MaterialID == id {
			delete(r.s.movements, k)
		}
	}
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements[m.ID] = *m
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memMovementRepo) GetForUpdate(ctx context.Context, id string) (*entity.Movement, error) {
	return r.GetByID(ctx, id)
}

func (r *memMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if f.MaterialID != "" && m.MaterialID != f.MaterialID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memMovementRepo) Update(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements[m.ID] = *m
	return nil
}

func (r *memMovementRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.movements, id)
	return nil
}
