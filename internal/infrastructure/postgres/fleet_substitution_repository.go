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

var _ repository.FleetSubstitutionRepository = (*FleetSubstitutionRepo)(nil)

const (
	substitutionColumns = `id, received_prefix, received_plate, received_model, received_bgpm, received_city,
		received_unit, indicated_prefix, indicated_plate, not_required, created_at`
	insertSubstitution = `
		INSERT INTO fleet_substitutions (` + substitutionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
)

// FleetSubstitutionRepo implementación de FleetSubstitutionRepository sobre PostgreSQL.
type FleetSubstitutionRepo struct {
	q Querier
}

// NewFleetSubstitutionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFleetSubstitutionRepository(q Querier) *FleetSubstitutionRepo {
	return &FleetSubstitutionRepo{q: q}
}

func substitutionArgs(s *entity.FleetSubstitution) []any {
	return []any{
		s.ID, nullString(s.ReceivedPrefix), nullString(s.ReceivedPlate), nullString(s.ReceivedModel),
		nullString(s.ReceivedBGPM), nullString(s.ReceivedCity), nullString(s.ReceivedUnit),
		nullString(s.IndicatedPrefix), nullString(s.IndicatedPlate), s.NotRequired, s.CreatedAt,
	}
}

// Create persiste una sustitución.
func (r *FleetSubstitutionRepo) Create(ctx context.Context, s *entity.FleetSubstitution) error {
	if _, err := r.q.Exec(ctx, insertSubstitution, substitutionArgs(s)...); err != nil {
		return fmt.Errorf("insert fleet substitution: %w", err)
	}
	return nil
}

// CreateMany inserta las sustituciones importadas en un solo batch.
func (r *FleetSubstitutionRepo) CreateMany(ctx context.Context, list []*entity.FleetSubstitution) error {
	if len(list) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, s := range list {
		batch.Queue(insertSubstitution, substitutionArgs(s)...)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert fleet substitutions batch: %w", err)
	}
	return nil
}

// GetByID obtiene una sustitución por ID. nil si no existe.
func (r *FleetSubstitutionRepo) GetByID(ctx context.Context, id string) (*entity.FleetSubstitution, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSubstitution(r.q.QueryRow(ctx, `SELECT `+substitutionColumns+` FROM fleet_substitutions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fleet substitution: %w", err)
	}
	return s, nil
}

// List sustituciones más recientes primero.
func (r *FleetSubstitutionRepo) List(ctx context.Context) ([]*entity.FleetSubstitution, error) {
	rows, err := r.q.Query(ctx, `SELECT `+substitutionColumns+` FROM fleet_substitutions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list fleet substitutions: %w", err)
	}
	defer rows.Close()
	var list []*entity.FleetSubstitution
	for rows.Next() {
		s, err := scanSubstitution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fleet substitution: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reemplaza la sustitución (created_at se conserva).
func (r *FleetSubstitutionRepo) Update(ctx context.Context, s *entity.FleetSubstitution) error {
	query := `
		UPDATE fleet_substitutions SET received_prefix = $2, received_plate = $3, received_model = $4,
			received_bgpm = $5, received_city = $6, received_unit = $7, indicated_prefix = $8,
			indicated_plate = $9, not_required = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, substitutionArgs(s)[:10]...)
	if err != nil {
		return fmt.Errorf("update fleet substitution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una sustitución.
func (r *FleetSubstitutionRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM fleet_substitutions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fleet substitution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSubstitution(row pgx.Row) (*entity.FleetSubstitution, error) {
	var (
		s                                      entity.FleetSubstitution
		prefix, plate, model, bgpm, city, unit *string
		indicatedPrefix, indicatedPlate        *string
	)
	err := row.Scan(
		&s.ID, &prefix, &plate, &model, &bgpm, &city, &unit,
		&indicatedPrefix, &indicatedPlate, &s.NotRequired, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ReceivedPrefix = derefString(prefix)
	s.ReceivedPlate = derefString(plate)
	s.ReceivedModel = derefString(model)
	s.ReceivedBGPM = derefString(bgpm)
	s.ReceivedCity = derefString(city)
	s.ReceivedUnit = derefString(unit)
	s.IndicatedPrefix = derefString(indicatedPrefix)
	s.IndicatedPlate = derefString(indicatedPlate)
	return &s, nil
}
