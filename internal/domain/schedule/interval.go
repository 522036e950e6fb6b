package schedule

import (
	"fmt"
	"time"
)

// DateLayout formato de fecha de calendario usado por la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Interval ventana semiabierta [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid informa si End es estrictamente posterior a Start.
func (a Interval) Valid() bool {
	return a.End.After(a.Start)
}

// Overlaps aplica la prueba semiabierta: s1 < e2 && e1 > s2. Es simétrica.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Clock hora del día (HH:MM).
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock interpreta "HH:MM" (00:00 a 23:59).
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("hora inválida %q: se espera HH:MM", s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseDate interpreta "YYYY-MM-DD" como medianoche en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return d, nil
}

// At combina el día de calendario de date (en loc) con la hora c.
func At(date time.Time, c Clock, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, loc)
}

// BuildInterval construye la ventana del día date entre start y end.
// Si end no es posterior a start se interpreta que termina al día siguiente (cruce de medianoche).
func BuildInterval(date time.Time, start, end Clock, loc *time.Location) Interval {
	from := At(date, start, loc)
	to := At(date, end, loc)
	if end.minutes() <= start.minutes() {
		to = At(date.In(loc).AddDate(0, 0, 1), end, loc)
	}
	return Interval{Start: from, End: to}
}

// Retime conserva el día de calendario en que empieza current y reemplaza solo las horas.
func Retime(current Interval, start, end Clock, loc *time.Location) Interval {
	return BuildInterval(current.Start, start, end, loc)
}
