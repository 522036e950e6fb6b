package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/application/schedule"
	"github.com/jhoicas/frota-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*InventoryTxRunner)(nil)
	_ schedule.TxRunner  = (*ScheduleTxRunner)(nil)
)

// inTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner transacciones del libro de stock: movimiento y cantidad cambian juntos.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run ejecuta fn con repos de movimientos y materiales atados a la misma tx.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewMovementRepository(tx), NewMaterialRepository(tx))
	})
}

// ScheduleTxRunner transacciones de agenda serializadas por viatura.
type ScheduleTxRunner struct {
	pool *pgxpool.Pool
}

// NewScheduleTxRunner construye el runner con el pool.
func NewScheduleTxRunner(pool *pgxpool.Pool) *ScheduleTxRunner {
	return &ScheduleTxRunner{pool: pool}
}

// Run toma un advisory lock de transacción por prefijo (en orden, sin repetir) antes de fn,
// de modo que la verificación de conflicto y la escritura no se intercalen con otra sobre la misma viatura.
func (r *ScheduleTxRunner) Run(ctx context.Context, vehiclePrefixes []string, fn func(
	scheduleRepo repository.ScheduleRepository,
	vehicleRepo repository.VehicleRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, key := range advisoryKeys(vehiclePrefixes) {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "schedule:"+key); err != nil {
				return fmt.Errorf("advisory lock %s: %w", key, err)
			}
		}
		return fn(NewScheduleRepository(tx), NewVehicleRepository(tx))
	})
}

// advisoryKeys prefijos no vacíos, ordenados y sin repetir (mismo orden en toda transacción).
func advisoryKeys(prefixes []string) []string {
	seen := make(map[string]struct{}, len(prefixes))
	keys := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		keys = append(keys, p)
	}
	sort.Strings(keys)
	return keys
}
