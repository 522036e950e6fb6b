package inventory

import (
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/inventory"
)

// materialNotFound nombre mostrado cuando el movimiento apunta a un material inexistente.
const materialNotFound = "Material não encontrado"

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Quantity:           m.Quantity,
		Unit:               m.Unit,
		CompatibleVehicles: m.CompatibleVehicles,
		Status:             string(inventory.Status(m.Quantity)),
		CreatedAt:          m.CreatedAt,
	}
}

func toMovementResponse(m *entity.Movement, material *entity.Material) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:            m.ID,
		MaterialID:    m.MaterialID,
		MaterialName:  materialNotFound,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Requester:     m.Requester,
		VehiclePrefix: m.VehiclePrefix,
		GuideNumber:   m.GuideNumber,
		Observation:   m.Observation,
		CreatedAt:     m.CreatedAt,
	}
	if material != nil {
		out.MaterialName = material.Name
		out.MaterialUnit = material.Unit
	}
	return out
}
