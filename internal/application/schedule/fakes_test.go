package schedule_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria para la agenda
// ──────────────────────────────────────────────────────────────────────────────

var errWrite = errors.New("falla de escritura")

type memStore struct {
	mu        sync.Mutex
	schedules map[string]entity.VehicleSchedule
	vehicles  map[string]entity.Vehicle
	// failUpdate hace fallar Update para ese id.
	failUpdate string
	// runs cuenta transacciones abiertas.
	runs int
	// beforeRun simula una edición ajena justo antes de la transacción número run.
	beforeRun func(run int)
}

func newMemStore(prefixes ...string) *memStore {
	s := &memStore{
		schedules: make(map[string]entity.VehicleSchedule),
		vehicles:  make(map[string]entity.Vehicle),
	}
	for _, p := range prefixes {
		s.vehicles[p] = entity.Vehicle{ID: "v-" + p, Prefix: p, Plate: "PLT" + p}
	}
	return s
}

func (s *memStore) put(list ...*entity.VehicleSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range list {
		s.schedules[e.ID] = *e
	}
}

func (s *memStore) get(id string) entity.VehicleSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedules[id]
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.schedules)
}

// Run implementa schedule.TxRunner sin bloqueo real; revierte si fn falla.
func (s *memStore) Run(ctx context.Context, _ []string, fn func(repository.ScheduleRepository, repository.VehicleRepository) error) error {
	s.mu.Lock()
	s.runs++
	run := s.runs
	s.mu.Unlock()
	if s.beforeRun != nil {
		s.beforeRun(run)
	}
	s.mu.Lock()
	snap := make(map[string]entity.VehicleSchedule, len(s.schedules))
	for k, v := range s.schedules {
		snap[k] = v
	}
	s.mu.Unlock()
	if err := fn(&memScheduleRepo{s: s}, &memVehicleRepo{s: s}); err != nil {
		s.mu.Lock()
		s.schedules = snap
		s.mu.Unlock()
		return err
	}
	return nil
}

type memScheduleRepo struct{ s *memStore }

func (r *memScheduleRepo) sorted(match func(entity.VehicleSchedule) bool) []*entity.VehicleSchedule {
	out := make([]*entity.VehicleSchedule, 0)
	for _, e := range r.s.schedules {
		if match(e) {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (r *memScheduleRepo) CreateMany(_ context.Context, list []*entity.VehicleSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range list {
		r.s.schedules[e.ID] = *e
	}
	return nil
}

func (r *memScheduleRepo) GetByID(_ context.Context, id string) (*entity.VehicleSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.schedules[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memScheduleRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.VehicleSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return r.sorted(func(e entity.VehicleSchedule) bool { return want[e.ID] }), nil
}

func (r *memScheduleRepo) ListByVehicle(_ context.Context, prefix string) ([]*entity.VehicleSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(e entity.VehicleSchedule) bool { return e.VehiclePrefix == prefix }), nil
}

func (r *memScheduleRepo) List(_ context.Context) ([]*entity.VehicleSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(entity.VehicleSchedule) bool { return true }), nil
}

func (r *memScheduleRepo) Update(_ context.Context, e *entity.VehicleSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdate == e.ID {
		return errWrite
	}
	r.s.schedules[e.ID] = *e
	return nil
}

// edit aplica fn a la reserva guardada; respeta failUpdate.
func (r *memScheduleRepo) edit(id string, fn func(*entity.VehicleSchedule)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdate == id {
		return errWrite
	}
	e, ok := r.s.schedules[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(&e)
	r.s.schedules[id] = e
	return nil
}

func (r *memScheduleRepo) UpdateVehicle(_ context.Context, id, prefix string) error {
	return r.edit(id, func(e *entity.VehicleSchedule) { e.VehiclePrefix = prefix })
}

func (r *memScheduleRepo) UpdateWindow(_ context.Context, id string, start, end time.Time) error {
	return r.edit(id, func(e *entity.VehicleSchedule) { e.StartTime, e.EndTime = start, end })
}

func (r *memScheduleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.schedules, id)
	return nil
}

func (r *memScheduleRepo) DeleteMany(_ context.Context, ids []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := r.s.schedules[id]; ok {
			delete(r.s.schedules, id)
			n++
		}
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type memVehicleRepo struct{ s *memStore }

func (r *memVehicleRepo) Create(context.Context, *entity.Vehicle) error       { return nil }
func (r *memVehicleRepo) CreateMany(context.Context, []*entity.Vehicle) error { return nil }
func (r *memVehicleRepo) GetByID(context.Context, string) (*entity.Vehicle, error) {
	return nil, nil
}
func (r *memVehicleRepo) GetByPrefix(_ context.Context, prefix string) (*entity.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vehicles[prefix]
	if !ok {
		return nil, nil
	}
	return &v, nil
}
func (r *memVehicleRepo) List(context.Context) ([]*entity.Vehicle, error) { return nil, nil }
func (r *memVehicleRepo) Update(context.Context, *entity.Vehicle) error   { return nil }
func (r *memVehicleRepo) Delete(context.Context, string) error            { return nil }
