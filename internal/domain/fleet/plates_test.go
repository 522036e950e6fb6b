package fleet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/fleet"
)

func existing() []*entity.FleetSubstitution {
	return []*entity.FleetSubstitution{
		{ID: "1", ReceivedPlate: "ABC1D23", IndicatedPlate: "OLD0001"},
		{ID: "2", ReceivedPlate: "XYZ9K87"},
	}
}

func TestFindDuplicatePlate_Recibida(t *testing.T) {
	dup := fleet.FindDuplicatePlate(existing(), &entity.FleetSubstitution{ReceivedPlate: " abc1d23 "}, "")
	require.NotNil(t, dup)
	assert.Equal(t, fleet.PlateReceived, dup.Side)
	assert.Equal(t, "ABC1D23", dup.Plate)
	assert.True(t, errors.Is(dup, domain.ErrDuplicate))
}

func TestFindDuplicatePlate_Indicada(t *testing.T) {
	dup := fleet.FindDuplicatePlate(existing(), &entity.FleetSubstitution{ReceivedPlate: "NEW1A11", IndicatedPlate: "old0001"}, "")
	require.NotNil(t, dup)
	assert.Equal(t, fleet.PlateIndicated, dup.Side)
}

func TestFindDuplicatePlate_NoRequeridaIgnoraIndicada(t *testing.T) {
	c := &entity.FleetSubstitution{ReceivedPlate: "NEW1A11", IndicatedPlate: "OLD0001", NotRequired: true}
	assert.Nil(t, fleet.FindDuplicatePlate(existing(), c, ""))
}

func TestFindDuplicatePlate_ExcluyeLaPropia(t *testing.T) {
	c := &entity.FleetSubstitution{ReceivedPlate: "ABC1D23", IndicatedPlate: "OLD0001"}
	assert.Nil(t, fleet.FindDuplicatePlate(existing(), c, "1"))
}

func TestPlateCounts(t *testing.T) {
	list := append(existing(), &entity.FleetSubstitution{ID: "3", ReceivedPlate: "abc1d23"})
	received, indicated := fleet.PlateCounts(list)
	assert.Equal(t, 2, received["ABC1D23"])
	assert.Equal(t, 1, indicated["OLD0001"])
}
