package inventory

import (
	"sort"

	"github.com/jhoicas/frota-api/internal/domain/entity"
)

// Adjustment variación a aplicar sobre la cantidad de un material.
type Adjustment struct {
	MaterialID string
	Delta      int64
}

// Effect devuelve el efecto con signo de un movimiento: +q para ENTRADA, -q para SAIDA.
func Effect(movementType string, quantity int64) int64 {
	if movementType == entity.MovementTypeEntry {
		return quantity
	}
	return -quantity
}

// InsertAdjustments ajustes al registrar m.
func InsertAdjustments(m *entity.Movement) []Adjustment {
	return []Adjustment{{MaterialID: m.MaterialID, Delta: Effect(m.Type, m.Quantity)}}
}

// DeleteAdjustments ajustes al eliminar m: el inverso exacto de InsertAdjustments.
func DeleteAdjustments(m *entity.Movement) []Adjustment {
	return []Adjustment{{MaterialID: m.MaterialID, Delta: -Effect(m.Type, m.Quantity)}}
}

// UpdateAdjustments revierte old y aplica updated. Si ambos apuntan al mismo material los
// deltas se combinan; los deltas nulos se omiten. El resultado sale ordenado por MaterialID
// para que los bloqueos de fila se tomen siempre en el mismo orden.
func UpdateAdjustments(old, updated *entity.Movement) []Adjustment {
	byMaterial := make(map[string]int64, 2)
	byMaterial[old.MaterialID] -= Effect(old.Type, old.Quantity)
	byMaterial[updated.MaterialID] += Effect(updated.Type, updated.Quantity)

	out := make([]Adjustment, 0, len(byMaterial))
	for id, delta := range byMaterial {
		if delta == 0 {
			continue
		}
		out = append(out, Adjustment{MaterialID: id, Delta: delta})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialID < out[j].MaterialID })
	return out
}

// MaterialIDs ids involucrados en un par old/updated, ordenados y sin repetir.
func MaterialIDs(movements ...*entity.Movement) []string {
	seen := make(map[string]struct{}, len(movements))
	ids := make([]string, 0, len(movements))
	for _, m := range movements {
		if m == nil {
			continue
		}
		if _, ok := seen[m.MaterialID]; ok {
			continue
		}
		seen[m.MaterialID] = struct{}{}
		ids = append(ids, m.MaterialID)
	}
	sort.Strings(ids)
	return ids
}
