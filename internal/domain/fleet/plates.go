package fleet

import (
	"fmt"

	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// Lados de una sustitución en los que puede repetirse una placa.
const (
	PlateReceived  = "RECEIVED"
	PlateIndicated = "INDICATED"
)

// NormalizePlate mayúsculas y sin espacios en los extremos.
func NormalizePlate(p string) string {
	return textnorm.Upper(p)
}

// DuplicatePlateError aviso: la placa ya figura en otra sustitución. Se puede forzar el guardado.
type DuplicatePlateError struct {
	Plate string
	Side  string // RECEIVED o INDICATED
}

func (e *DuplicatePlateError) Error() string {
	return fmt.Sprintf("placa %s ya registrada (%s)", e.Plate, e.Side)
}

// Is permite errors.Is(err, domain.ErrDuplicate).
func (e *DuplicatePlateError) Is(target error) bool {
	return target == domain.ErrDuplicate
}

// FindDuplicatePlate compara la placa recibida contra las recibidas de las demás sustituciones
// y la indicada contra las indicadas. La propia (excludeID) se ignora.
func FindDuplicatePlate(existing []*entity.FleetSubstitution, candidate *entity.FleetSubstitution, excludeID string) *DuplicatePlateError {
	received := NormalizePlate(candidate.ReceivedPlate)
	indicated := ""
	if !candidate.NotRequired {
		indicated = NormalizePlate(candidate.IndicatedPlate)
	}
	for _, s := range existing {
		if s.ID == excludeID {
			continue
		}
		if received != "" && NormalizePlate(s.ReceivedPlate) == received {
			return &DuplicatePlateError{Plate: received, Side: PlateReceived}
		}
	}
	if indicated == "" {
		return nil
	}
	for _, s := range existing {
		if s.ID == excludeID {
			continue
		}
		if NormalizePlate(s.IndicatedPlate) == indicated {
			return &DuplicatePlateError{Plate: indicated, Side: PlateIndicated}
		}
	}
	return nil
}

// PlateCounts cuenta ocurrencias por placa recibida e indicada, para marcar repetidas en listados.
func PlateCounts(list []*entity.FleetSubstitution) (received, indicated map[string]int) {
	received = make(map[string]int, len(list))
	indicated = make(map[string]int, len(list))
	for _, s := range list {
		if p := NormalizePlate(s.ReceivedPlate); p != "" {
			received[p]++
		}
		if p := NormalizePlate(s.IndicatedPlate); p != "" {
			indicated[p]++
		}
	}
	return received, indicated
}
