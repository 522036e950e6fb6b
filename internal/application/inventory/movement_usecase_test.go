package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
)

var brt = time.FixedZone("BRT", -3*60*60)

func newMovementUseCase(s *memStore) *inventory.MovementUseCase {
	return inventory.NewMovementUseCase(s, &memMovementRepo{s: s}, &memMaterialRepo{s: s}, brt)
}

func entryReq(materialID string, qty int64) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{MaterialID: materialID, Type: entity.MovementTypeEntry, Quantity: qty, CreatedAt: "2024-05-10"}
}

func exitReq(materialID string, qty int64) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		MaterialID: materialID, Type: entity.MovementTypeExit, Quantity: qty,
		Requester: "SGT SILVA", VehiclePrefix: "VP-100", CreatedAt: "2024-05-11",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaYSalidaAjustanCantidad(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro de óleo", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	in, err := uc.Register(ctx, entryReq("filtro", 10))
	require.NoError(t, err)
	assert.Equal(t, "Filtro de óleo", in.MaterialName)
	assert.Equal(t, int64(10), s.quantity("filtro"))

	_, err = uc.Register(ctx, exitReq("filtro", 3))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.quantity("filtro"))
}

func TestRegister_SalidaSinSolicitanteNiPrefijo(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro", 5)
	uc := newMovementUseCase(s)

	req := exitReq("filtro", 1)
	req.Requester, req.VehiclePrefix = "", ""
	_, err := uc.Register(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"requester", "vehicle_prefix"}, verr.Fields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), s.quantity("filtro"))
}

func TestRegister_CantidadYTipoInvalidos(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro", 5)
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{MaterialID: "filtro", Type: "TRANSFER", Quantity: 0})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"type", "quantity"}, verr.Fields)
}

func TestRegister_MaterialInexistente(t *testing.T) {
	s := newMemStore()
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), entryReq("nada", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, s.movementCount())
}

func TestRegister_SalidaPuedeDejarSaldoNegativo(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro", 2)
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), exitReq("filtro", 7))
	require.NoError(t, err)
	assert.Equal(t, int64(-5), s.quantity("filtro"))
}

func TestRegister_ErrorEnAjusteRevierteMovimiento(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro", 0)
	s.failAdjust = errors.New("falla de escritura")
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), entryReq("filtro", 4))
	require.Error(t, err)
	assert.Equal(t, 0, s.movementCount(), "el movimiento no debe quedar sin su ajuste")
	assert.Equal(t, int64(0), s.quantity("filtro"))
}

// Caso: ENTRADA 10, SAIDA 3, editar la salida a 4, borrar la entrada → -4.
func TestLedger_EditarYBorrarMantienenConservacion(t *testing.T) {
	s := newMemStore()
	s.addMaterial("filtro", "Filtro", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	entry, err := uc.Register(ctx, entryReq("filtro", 10))
	require.NoError(t, err)
	exit, err := uc.Register(ctx, exitReq("filtro", 3))
	require.NoError(t, err)

	_, err = uc.Update(ctx, exit.ID, exitReq("filtro", 4))
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.quantity("filtro"))

	require.NoError(t, uc.Delete(ctx, entry.ID))
	assert.Equal(t, int64(-4), s.quantity("filtro"))
}

func TestUpdate_CambioDeMaterialAjustaAmbos(t *testing.T) {
	s := newMemStore()
	s.addMaterial("a", "Pastilha", 0)
	s.addMaterial("b", "Lâmpada", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	mov, err := uc.Register(ctx, entryReq("a", 8))
	require.NoError(t, err)

	out, err := uc.Update(ctx, mov.ID, entryReq("b", 8))
	require.NoError(t, err)
	assert.Equal(t, "Lâmpada", out.MaterialName)
	assert.Equal(t, int64(0), s.quantity("a"))
	assert.Equal(t, int64(8), s.quantity("b"))
}

func TestUpdate_FechaVaciaConservaLaOriginal(t *testing.T) {
	s := newMemStore()
	s.addMaterial("a", "Pastilha", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	mov, err := uc.Register(ctx, entryReq("a", 1))
	require.NoError(t, err)

	req := entryReq("a", 2)
	req.CreatedAt = ""
	out, err := uc.Update(ctx, mov.ID, req)
	require.NoError(t, err)
	assert.True(t, out.CreatedAt.Equal(mov.CreatedAt))
}

func TestUpdateYDelete_MovimientoInexistente(t *testing.T) {
	s := newMemStore()
	s.addMaterial("a", "Pastilha", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	_, err := uc.Update(ctx, "nada", entryReq("a", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "nada"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorTipoYBusca(t *testing.T) {
	s := newMemStore()
	s.addMaterial("a", "Pastilha de freio", 0)
	s.addMaterial("b", "Lâmpada", 0)
	uc := newMovementUseCase(s)
	ctx := context.Background()

	_, err := uc.Register(ctx, entryReq("a", 5))
	require.NoError(t, err)
	_, err = uc.Register(ctx, exitReq("a", 1))
	require.NoError(t, err)
	_, err = uc.Register(ctx, entryReq("b", 2))
	require.NoError(t, err)

	exits, err := uc.List(ctx, dto.MovementListQuery{Type: "saida"})
	require.NoError(t, err)
	assert.Equal(t, 1, exits.Total)

	found, err := uc.List(ctx, dto.MovementListQuery{Search: "lampada"})
	require.NoError(t, err)
	require.Equal(t, 1, found.Total)
	assert.Equal(t, "b", found.Items[0].MaterialID)

	_, err = uc.List(ctx, dto.MovementListQuery{Type: "AJUSTE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseMovementDate(t *testing.T) {
	d, err := inventory.ParseMovementDate("2024-05-10", brt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, brt), d)

	d, err = inventory.ParseMovementDate("", brt)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = inventory.ParseMovementDate("10/05/2024", brt)
	assert.Error(t, err)
}
