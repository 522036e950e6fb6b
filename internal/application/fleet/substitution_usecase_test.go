package fleet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/domain"
	plates "github.com/jhoicas/frota-api/internal/domain/fleet"
)

func TestSubstitution_PlacaRepetidaYForce(t *testing.T) {
	uc := fleet.NewSubstitutionUseCase(&memSubstitutionRepo{})
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.SubstitutionRequest{ReceivedPrefix: "VP-1", ReceivedPlate: "abc1234", IndicatedPrefix: "VP-9", IndicatedPlate: "old0001"})
	require.NoError(t, err)

	req := dto.SubstitutionRequest{ReceivedPrefix: "VP-2", ReceivedPlate: " ABC1234 "}
	_, err = uc.Create(ctx, req)
	var dup *plates.DuplicatePlateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ABC1234", dup.Plate)
	assert.Equal(t, plates.PlateReceived, dup.Side)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	req.Force = true
	_, err = uc.Create(ctx, req)
	require.NoError(t, err)

	// Editar la primera sin cambiar su placa no choca consigo misma pero sí con la forzada.
	_, err = uc.Update(ctx, first.ID, dto.SubstitutionRequest{ReceivedPrefix: "VP-1", ReceivedPlate: "ABC1234"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx, dto.SubstitutionListQuery{})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.True(t, list.Items[0].ReceivedDuplicate)
	assert.False(t, list.Items[0].IndicatedDuplicate)
}

func TestSubstitution_NoRequeridaDescartaIndicada(t *testing.T) {
	uc := fleet.NewSubstitutionUseCase(&memSubstitutionRepo{})

	out, err := uc.Create(context.Background(), dto.SubstitutionRequest{
		ReceivedPrefix: "VP-1", ReceivedPlate: "ABC1234", IndicatedPrefix: "VP-9", IndicatedPlate: "OLD0001", NotRequired: true,
	})
	require.NoError(t, err)
	assert.Nil(t, out.IndicatedPrefix)
	assert.Nil(t, out.IndicatedPlate)
}

func TestSubstitution_ListEstados(t *testing.T) {
	uc := fleet.NewSubstitutionUseCase(&memSubstitutionRepo{})
	ctx := context.Background()
	_, _ = uc.Create(ctx, dto.SubstitutionRequest{ReceivedPrefix: "VP-1", ReceivedPlate: "A1", IndicatedPrefix: "VP-9", IndicatedPlate: "X1", ReceivedCity: "BH"})
	_, _ = uc.Create(ctx, dto.SubstitutionRequest{ReceivedPrefix: "VP-2", ReceivedPlate: "A2", ReceivedCity: "Contagem"})
	_, _ = uc.Create(ctx, dto.SubstitutionRequest{ReceivedPrefix: "VP-3", ReceivedPlate: "A3", NotRequired: true, ReceivedCity: "BH"})

	all, err := uc.List(ctx, dto.SubstitutionListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 2, all.Completed)
	assert.Equal(t, 1, all.Pending)

	pending, err := uc.List(ctx, dto.SubstitutionListQuery{Status: "pending"})
	require.NoError(t, err)
	require.Equal(t, 1, pending.Total)
	assert.Equal(t, "VP-2", pending.Items[0].ReceivedPrefix)

	notRequired, err := uc.List(ctx, dto.SubstitutionListQuery{Status: "NOT_REQUIRED", City: "BH"})
	require.NoError(t, err)
	require.Equal(t, 1, notRequired.Total)
	assert.Equal(t, "VP-3", notRequired.Items[0].ReceivedPrefix)

	_, err = uc.List(ctx, dto.SubstitutionListQuery{Status: "OUTRO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubstitution_ImportUbicaEncabezado(t *testing.T) {
	repo := &memSubstitutionRepo{}
	uc := fleet.NewSubstitutionUseCase(repo)
	rows := [][]string{
		{"POLÍCIA MILITAR"},
		{"RELAÇÃO DE SUBSTITUIÇÕES"},
		{"BGPM", "PREFIXO", "PLACA", "MARCA/MODELO", "MUNICÍPIO", "UNIDADE", "PREFIXO", "PLACA"},
		{"12/2024", "VP-10", "abc1234", "Duster", "BH", "1º BPM", "VP-01", "old0001"},
		{"12/2024", "", "zzz9999", "", "", "", "", ""},
		{"13/2024", "VP-11", "def5678", "Hilux", "Contagem", "2º BPM", "", ""},
	}
	res, err := uc.Import(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "VP-10", list[0].ReceivedPrefix)
	assert.Equal(t, "ABC1234", list[0].ReceivedPlate)
	assert.Equal(t, "12/2024", list[0].ReceivedBGPM)
	assert.Equal(t, "BH", list[0].ReceivedCity)
	assert.Equal(t, "1º BPM", list[0].ReceivedUnit)
	assert.Equal(t, "VP-01", list[0].IndicatedPrefix)
	assert.Equal(t, "OLD0001", list[0].IndicatedPlate)
	assert.Equal(t, "", list[1].IndicatedPrefix)

	_, err = uc.Import(context.Background(), [][]string{{"PREFIXO", "PLACA"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
