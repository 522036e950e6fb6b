package schedule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/schedule"
)

func reservation(t *testing.T, id, prefix, from, to string) *entity.VehicleSchedule {
	return &entity.VehicleSchedule{ID: id, VehiclePrefix: prefix, StartTime: at(t, from), EndTime: at(t, to)}
}

// VP-100 08:00–12:00; un alta 10:00–14:00 debe chocar con la primera.
func TestFindConflict_EscenarioVP100(t *testing.T) {
	existing := []*entity.VehicleSchedule{
		reservation(t, "r1", "VP-100", "2024-05-01 08:00", "2024-05-01 12:00"),
	}
	candidate := schedule.Interval{Start: at(t, "2024-05-01 10:00"), End: at(t, "2024-05-01 14:00")}

	got := schedule.FindConflict(existing, "VP-100", candidate, "")
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)
}

func TestFindConflict_OtraViaturaNoChoca(t *testing.T) {
	existing := []*entity.VehicleSchedule{
		reservation(t, "r1", "VP-100", "2024-05-01 08:00", "2024-05-01 12:00"),
	}
	candidate := schedule.Interval{Start: at(t, "2024-05-01 10:00"), End: at(t, "2024-05-01 14:00")}
	assert.Nil(t, schedule.FindConflict(existing, "VP-200", candidate, ""))
}

// Una reserva editada sin cambios no choca consigo misma.
func TestFindConflict_AutoExclusion(t *testing.T) {
	r := reservation(t, "r1", "VP-100", "2024-05-01 08:00", "2024-05-01 12:00")
	existing := []*entity.VehicleSchedule{r}

	assert.Nil(t, schedule.FindConflict(existing, "VP-100", schedule.IntervalOf(r), "r1"))
	assert.NotNil(t, schedule.FindConflict(existing, "VP-100", schedule.IntervalOf(r), ""))
}

func TestFindConflict_DevuelveElPrimeroEnOrden(t *testing.T) {
	existing := []*entity.VehicleSchedule{
		reservation(t, "a", "VP-1", "2024-05-01 08:00", "2024-05-01 09:30"),
		reservation(t, "b", "VP-1", "2024-05-01 09:00", "2024-05-01 11:00"),
	}
	candidate := schedule.Interval{Start: at(t, "2024-05-01 09:00"), End: at(t, "2024-05-01 10:00")}
	got := schedule.FindConflict(existing, "VP-1", candidate, "")
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestConflictError_EsErrConflict(t *testing.T) {
	var err error = &schedule.ConflictError{VehiclePrefix: "VP-1", Date: "2024-06-02"}
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), "2024-06-02")
}
