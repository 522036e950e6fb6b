package fleet

import (
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/domain/entity"
)

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:        v.ID,
		Prefix:    v.Prefix,
		Plate:     v.Plate,
		Model:     v.Model,
		Fraction:  v.Fraction,
		CreatedAt: v.CreatedAt,
	}
}

func toPavResponse(p *entity.PavProcess) dto.PavProcessResponse {
	return dto.PavProcessResponse{
		ID:               p.ID,
		Fraction:         p.Fraction,
		VehiclePrefix:    p.VehiclePrefix,
		VehiclePlate:     p.VehiclePlate,
		AccidentDate:     p.AccidentDate,
		RedsNumber:       p.RedsNumber,
		PavNumber:        p.PavNumber,
		Inquirer:         p.Inquirer,
		InquirerPMNumber: p.InquirerPMNumber,
		SentToInquirer:   p.SentToInquirer,
		OSRequestDate:    p.OSRequestDate,
		OSNumber:         p.OSNumber,
		OSFollowupDate:   p.OSFollowupDate,
		Observations:     p.Observations,
		CreatedAt:        p.CreatedAt,
	}
}

func toSubstitutionResponse(s *entity.FleetSubstitution) dto.SubstitutionResponse {
	return dto.SubstitutionResponse{
		ID:              s.ID,
		ReceivedPrefix:  s.ReceivedPrefix,
		ReceivedPlate:   s.ReceivedPlate,
		ReceivedModel:   s.ReceivedModel,
		ReceivedBGPM:    s.ReceivedBGPM,
		ReceivedCity:    s.ReceivedCity,
		ReceivedUnit:    s.ReceivedUnit,
		IndicatedPrefix: nullable(s.IndicatedPrefix),
		IndicatedPlate:  nullable(s.IndicatedPlate),
		NotRequired:     s.NotRequired,
		CreatedAt:       s.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
