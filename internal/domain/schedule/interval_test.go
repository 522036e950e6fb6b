package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/domain/schedule"
)

var loc = time.FixedZone("BRT", -3*60*60)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	require.NoError(t, err)
	return v
}

func clock(t *testing.T, s string) schedule.Clock {
	t.Helper()
	c, err := schedule.ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestOverlaps_Simetria(t *testing.T) {
	windows := []schedule.Interval{
		{Start: at(t, "2024-05-01 08:00"), End: at(t, "2024-05-01 12:00")},
		{Start: at(t, "2024-05-01 10:00"), End: at(t, "2024-05-01 14:00")},
		{Start: at(t, "2024-05-01 12:00"), End: at(t, "2024-05-01 13:00")},
		{Start: at(t, "2024-05-01 07:00"), End: at(t, "2024-05-01 20:00")},
		{Start: at(t, "2024-05-02 08:00"), End: at(t, "2024-05-02 09:00")},
	}
	for i, a := range windows {
		for j, b := range windows {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "pares %d/%d", i, j)
		}
	}
}

func TestOverlaps_SemiabiertoNoChocaEnElBorde(t *testing.T) {
	morning := schedule.Interval{Start: at(t, "2024-05-01 08:00"), End: at(t, "2024-05-01 12:00")}
	afternoon := schedule.Interval{Start: at(t, "2024-05-01 12:00"), End: at(t, "2024-05-01 16:00")}
	assert.False(t, morning.Overlaps(afternoon), "12:00 termina una y empieza la otra")

	inside := schedule.Interval{Start: at(t, "2024-05-01 09:00"), End: at(t, "2024-05-01 10:00")}
	assert.True(t, morning.Overlaps(inside))
}

// 22:00–02:00 en D equivale a [D 22:00, D+1 02:00).
func TestBuildInterval_CruceDeMedianoche(t *testing.T) {
	day := at(t, "2024-05-01 00:00")
	iv := schedule.BuildInterval(day, clock(t, "22:00"), clock(t, "02:00"), loc)

	assert.Equal(t, at(t, "2024-05-01 22:00"), iv.Start)
	assert.Equal(t, at(t, "2024-05-02 02:00"), iv.End)
	assert.True(t, iv.Valid())
}

func TestBuildInterval_MismoDia(t *testing.T) {
	day := at(t, "2024-06-01 00:00")
	iv := schedule.BuildInterval(day, clock(t, "09:00"), clock(t, "11:00"), loc)
	assert.Equal(t, at(t, "2024-06-01 09:00"), iv.Start)
	assert.Equal(t, at(t, "2024-06-01 11:00"), iv.End)
}

func TestBuildInterval_HorasIgualesPasanAlDiaSiguiente(t *testing.T) {
	day := at(t, "2024-06-01 00:00")
	iv := schedule.BuildInterval(day, clock(t, "08:00"), clock(t, "08:00"), loc)
	assert.Equal(t, 24*time.Hour, iv.End.Sub(iv.Start))
}

func TestRetime_ConservaFechaOriginal(t *testing.T) {
	current := schedule.Interval{Start: at(t, "2024-07-10 08:00"), End: at(t, "2024-07-10 12:00")}
	iv := schedule.Retime(current, clock(t, "14:00"), clock(t, "16:00"), loc)
	assert.Equal(t, at(t, "2024-07-10 14:00"), iv.Start)
	assert.Equal(t, at(t, "2024-07-10 16:00"), iv.End)
}

func TestRetime_CruceDeMedianocheTerminaAlDiaSiguiente(t *testing.T) {
	current := schedule.Interval{Start: at(t, "2024-06-01 08:00"), End: at(t, "2024-06-01 12:00")}
	iv := schedule.Retime(current, clock(t, "22:00"), clock(t, "02:00"), loc)
	assert.Equal(t, at(t, "2024-06-01 22:00"), iv.Start)
	assert.Equal(t, at(t, "2024-06-02 02:00"), iv.End)
	assert.True(t, iv.Valid())
}

func TestParseClock_Invalida(t *testing.T) {
	for _, s := range []string{"", "25:00", "8h", "12:60"} {
		_, err := schedule.ParseClock(s)
		assert.Error(t, err, s)
	}
	c, err := schedule.ParseClock("07:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05", c.String())
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2024-06-03", loc)
	require.NoError(t, err)
	assert.Equal(t, at(t, "2024-06-03 00:00"), d)

	_, err = schedule.ParseDate("03/06/2024", loc)
	assert.Error(t, err)
}
