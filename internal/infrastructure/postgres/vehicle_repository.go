package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const (
	vehicleColumns = `id, prefix, plate, model, fraction, created_at`
	insertVehicle  = `
		INSERT INTO vehicles (id, prefix, plate, model, fraction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// VehicleRepo implementación de VehicleRepository sobre PostgreSQL (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste una viatura. Prefijo repetido: ErrDuplicate.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx, insertVehicle, v.ID, v.Prefix, v.Plate, nullString(v.Model), nullString(v.Fraction), v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// CreateMany inserta todas las viaturas en un solo batch (transacción implícita).
func (r *VehicleRepo) CreateMany(ctx context.Context, vehicles []*entity.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, v := range vehicles {
		batch.Queue(insertVehicle, v.ID, v.Prefix, v.Plate, nullString(v.Model), nullString(v.Fraction), v.CreatedAt)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicles batch: %w", err)
	}
	return nil
}

// GetByID obtiene una viatura por ID. nil si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.get(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
}

// GetByPrefix obtiene una viatura por prefijo. nil si no existe.
func (r *VehicleRepo) GetByPrefix(ctx context.Context, prefix string) (*entity.Vehicle, error) {
	return r.get(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE prefix = $1`, prefix)
}

func (r *VehicleRepo) get(ctx context.Context, query, arg string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// List viaturas ordenadas por prefijo.
func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY prefix`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza la viatura. Un cambio de prefijo se propaga a la agenda (ON UPDATE CASCADE).
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `UPDATE vehicles SET prefix = $2, plate = $3, model = $4, fraction = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, v.ID, v.Prefix, v.Plate, nullString(v.Model), nullString(v.Fraction))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la viatura. Con reservas asociadas: ErrVehicleInUse.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrVehicleInUse
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var (
		v               entity.Vehicle
		model, fraction *string
	)
	if err := row.Scan(&v.ID, &v.Prefix, &v.Plate, &model, &fraction, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.Model = derefString(model)
	v.Fraction = derefString(fraction)
	return &v, nil
}
