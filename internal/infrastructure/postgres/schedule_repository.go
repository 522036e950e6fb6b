package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

const scheduleColumns = `id, vehicle_prefix, driver_name, reason, start_time, end_time, observations, created_at`

// ScheduleRepo implementación de ScheduleRepository sobre PostgreSQL (usable con pool o tx).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

// CreateMany inserta todas las reservas en un solo batch.
func (r *ScheduleRepo) CreateMany(ctx context.Context, schedules []*entity.VehicleSchedule) error {
	if len(schedules) == 0 {
		return nil
	}
	query := `
		INSERT INTO vehicle_schedules (id, vehicle_prefix, driver_name, reason, start_time, end_time, observations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	batch := &pgx.Batch{}
	for _, s := range schedules {
		batch.Queue(query,
			s.ID, s.VehiclePrefix, s.DriverName, s.Reason, s.StartTime, s.EndTime, nullString(s.Observations), s.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return scheduleWriteError("insert schedules", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. nil si no existe.
func (r *ScheduleRepo) GetByID(ctx context.Context, id string) (*entity.VehicleSchedule, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSchedule(r.q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM vehicle_schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return s, nil
}

// ListByIDs reservas con los IDs dados, en orden de inicio. Los inexistentes se omiten.
func (r *ScheduleRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.VehicleSchedule, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+scheduleColumns+` FROM vehicle_schedules WHERE id = ANY($1::uuid[]) ORDER BY start_time`, ids)
}

// ListByVehicle reservas de una viatura ordenadas por inicio.
func (r *ScheduleRepo) ListByVehicle(ctx context.Context, vehiclePrefix string) ([]*entity.VehicleSchedule, error) {
	return r.list(ctx, `SELECT `+scheduleColumns+` FROM vehicle_schedules WHERE vehicle_prefix = $1 ORDER BY start_time`, vehiclePrefix)
}

// List toda la agenda ordenada por inicio.
func (r *ScheduleRepo) List(ctx context.Context) ([]*entity.VehicleSchedule, error) {
	return r.list(ctx, `SELECT `+scheduleColumns+` FROM vehicle_schedules ORDER BY start_time`)
}

func (r *ScheduleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.VehicleSchedule, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reemplaza la reserva.
func (r *ScheduleRepo) Update(ctx context.Context, s *entity.VehicleSchedule) error {
	query := `
		UPDATE vehicle_schedules SET vehicle_prefix = $2, driver_name = $3, reason = $4,
			start_time = $5, end_time = $6, observations = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.VehiclePrefix, s.DriverName, s.Reason, s.StartTime, s.EndTime, nullString(s.Observations),
	)
	if err != nil {
		return scheduleWriteError("update schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateVehicle cambia solo vehicle_prefix.
func (r *ScheduleRepo) UpdateVehicle(ctx context.Context, id, vehiclePrefix string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE vehicle_schedules SET vehicle_prefix = $2 WHERE id = $1`, id, vehiclePrefix)
	if err != nil {
		return scheduleWriteError("update schedule vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateWindow cambia solo start_time y end_time.
func (r *ScheduleRepo) UpdateWindow(ctx context.Context, id string, start, end time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE vehicle_schedules SET start_time = $2, end_time = $3 WHERE id = $1`, id, start, end)
	if err != nil {
		return fmt.Errorf("update schedule window: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una reserva.
func (r *ScheduleRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM vehicle_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany elimina las reservas indicadas en una sola sentencia.
// ErrNotFound si ninguna existe.
func (r *ScheduleRepo) DeleteMany(ctx context.Context, ids []string) error {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM vehicle_schedules WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return fmt.Errorf("delete schedules: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scheduleWriteError traduce la FK de vehicle_prefix a error de validación.
func scheduleWriteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return domain.NewValidationError("viatura no registrada", "vehicle_prefix")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanSchedule(row pgx.Row) (*entity.VehicleSchedule, error) {
	var (
		s            entity.VehicleSchedule
		observations *string
	)
	err := row.Scan(&s.ID, &s.VehiclePrefix, &s.DriverName, &s.Reason, &s.StartTime, &s.EndTime, &observations, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Observations = derefString(observations)
	return &s, nil
}
