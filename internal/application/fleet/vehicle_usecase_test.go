package fleet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/domain"
)

func TestVehicle_CreateNormalizaYValida(t *testing.T) {
	uc := fleet.NewVehicleUseCase(newMemVehicleRepo())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.VehicleRequest{Prefix: " vp-100 ", Plate: "abc1d23", Model: "L200"})
	require.NoError(t, err)
	assert.Equal(t, "VP-100", out.Prefix)
	assert.Equal(t, "ABC1D23", out.Plate)

	_, err = uc.Create(ctx, dto.VehicleRequest{Prefix: "VP-100", Plate: "XYZ"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.VehicleRequest{Model: "Hilux"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"prefix", "plate"}, verr.Fields)
}

func TestVehicle_DeleteConReservas(t *testing.T) {
	repo := newMemVehicleRepo()
	uc := fleet.NewVehicleUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.VehicleRequest{Prefix: "VP-100", Plate: "ABC1234"})
	require.NoError(t, err)
	repo.inUse["VP-100"] = true

	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrVehicleInUse)
	assert.ErrorIs(t, uc.Delete(ctx, "nada"), domain.ErrNotFound)
}

func TestVehicle_ListBusca(t *testing.T) {
	uc := fleet.NewVehicleUseCase(newMemVehicleRepo())
	ctx := context.Background()
	_, _ = uc.Create(ctx, dto.VehicleRequest{Prefix: "VP-100", Plate: "ABC1234"})
	_, _ = uc.Create(ctx, dto.VehicleRequest{Prefix: "VP-200", Plate: "QWE9876"})

	out, err := uc.List(ctx, dto.VehicleListQuery{Search: "qwe"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "VP-200", out.Items[0].Prefix)
}

func TestVehicle_ImportOmitePrefijoVacioCeroYRepetido(t *testing.T) {
	repo := newMemVehicleRepo()
	uc := fleet.NewVehicleUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.VehicleRequest{Prefix: "VP-1", Plate: "AAA0001"})
	require.NoError(t, err)

	rows := [][]string{
		{"Prefixo", "Placa", "Marca/Modelo", "Fração"},
		{"VP-2", "BBB0002", "Hilux", "1ª CIA"},
		{"0", "CCC0003", "", ""},
		{"", "DDD0004", "", ""},
		{"VP-1", "AAA0001", "", ""},
		{"VP-3", "EEE0005", "Duster", "2ª CIA"},
	}
	res, err := uc.Import(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)

	v, err := repo.GetByPrefix(ctx, "VP-2")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Hilux", v.Model)
	assert.Equal(t, "1ª CIA", v.Fraction)
}
