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

var _ repository.PavProcessRepository = (*PavProcessRepo)(nil)

const (
	pavColumns = `id, fraction, vehicle_prefix, vehicle_plate, accident_date, reds_number, pav_number,
		inquirer, inquirer_pm_number, sent_to_inquirer, os_request_date, os_number, os_followup_date,
		observations, created_at`
	insertPav = `
		INSERT INTO pav_processes (` + pavColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
)

// PavProcessRepo implementación de PavProcessRepository sobre PostgreSQL.
type PavProcessRepo struct {
	q Querier
}

// NewPavProcessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPavProcessRepository(q Querier) *PavProcessRepo {
	return &PavProcessRepo{q: q}
}

func pavArgs(p *entity.PavProcess) []any {
	return []any{
		p.ID, nullString(p.Fraction), nullString(p.VehiclePrefix), nullString(p.VehiclePlate), p.AccidentDate,
		nullString(p.RedsNumber), nullString(p.PavNumber), nullString(p.Inquirer), nullString(p.InquirerPMNumber),
		p.SentToInquirer, p.OSRequestDate, nullString(p.OSNumber), p.OSFollowupDate,
		nullString(p.Observations), p.CreatedAt,
	}
}

// Create persiste un proceso PAV.
func (r *PavProcessRepo) Create(ctx context.Context, p *entity.PavProcess) error {
	if _, err := r.q.Exec(ctx, insertPav, pavArgs(p)...); err != nil {
		return fmt.Errorf("insert pav process: %w", err)
	}
	return nil
}

// CreateMany inserta los procesos importados en un solo batch.
func (r *PavProcessRepo) CreateMany(ctx context.Context, processes []*entity.PavProcess) error {
	if len(processes) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range processes {
		batch.Queue(insertPav, pavArgs(p)...)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert pav processes batch: %w", err)
	}
	return nil
}

// GetByID obtiene un proceso por ID. nil si no existe.
func (r *PavProcessRepo) GetByID(ctx context.Context, id string) (*entity.PavProcess, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanPav(r.q.QueryRow(ctx, `SELECT `+pavColumns+` FROM pav_processes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pav process: %w", err)
	}
	return p, nil
}

// List procesos más recientes primero.
func (r *PavProcessRepo) List(ctx context.Context) ([]*entity.PavProcess, error) {
	rows, err := r.q.Query(ctx, `SELECT `+pavColumns+` FROM pav_processes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pav processes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PavProcess
	for rows.Next() {
		p, err := scanPav(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pav process: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reemplaza el proceso (created_at se conserva).
func (r *PavProcessRepo) Update(ctx context.Context, p *entity.PavProcess) error {
	query := `
		UPDATE pav_processes SET fraction = $2, vehicle_prefix = $3, vehicle_plate = $4, accident_date = $5,
			reds_number = $6, pav_number = $7, inquirer = $8, inquirer_pm_number = $9, sent_to_inquirer = $10,
			os_request_date = $11, os_number = $12, os_followup_date = $13, observations = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, pavArgs(p)[:14]...)
	if err != nil {
		return fmt.Errorf("update pav process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proceso.
func (r *PavProcessRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM pav_processes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pav process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPav(row pgx.Row) (*entity.PavProcess, error) {
	var (
		p                                                   entity.PavProcess
		fraction, prefix, plate, reds, pav, inquirer, pmNum *string
		osNumber, observations                              *string
		accident, osRequest, osFollowup                     *time.Time
	)
	err := row.Scan(
		&p.ID, &fraction, &prefix, &plate, &accident, &reds, &pav,
		&inquirer, &pmNum, &p.SentToInquirer, &osRequest, &osNumber, &osFollowup,
		&observations, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Fraction = derefString(fraction)
	p.VehiclePrefix = derefString(prefix)
	p.VehiclePlate = derefString(plate)
	p.RedsNumber = derefString(reds)
	p.PavNumber = derefString(pav)
	p.Inquirer = derefString(inquirer)
	p.InquirerPMNumber = derefString(pmNum)
	p.OSNumber = derefString(osNumber)
	p.Observations = derefString(observations)
	p.AccidentDate, p.OSRequestDate, p.OSFollowupDate = accident, osRequest, osFollowup
	return &p, nil
}
