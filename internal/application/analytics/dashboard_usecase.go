// Package analytics resume el estado de almacén, agenda, PAV y sustituciones para la pantalla inicial.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/domain/inventory"
)

// Sources listados consultados. Son los mismos que alimentan las exportaciones.
type Sources struct {
	Materials     report.MaterialLister
	Schedules     report.ScheduleLister
	Pav           report.PavLister
	Substitutions report.SubstitutionLister
}

// DashboardUseCase arma el DashboardSummary consultando los módulos en paralelo.
type DashboardUseCase struct {
	src Sources
	loc *time.Location
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc define qué es "hoy".
func NewDashboardUseCase(src Sources, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{src: src, loc: loc, now: time.Now}
}

// GetSummary cuatro consultas en paralelo; la primera que falle corta el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	now := uc.now().In(uc.loc)

	type stockResult struct {
		v   dto.StockSummary
		err error
	}
	type scheduleResult struct {
		v   dto.ScheduleSummary
		err error
	}
	type pavResult struct {
		v   dto.PavSummary
		err error
	}
	type substitutionResult struct {
		v   dto.SubstitutionSummary
		err error
	}

	stockCh := make(chan stockResult, 1)
	scheduleCh := make(chan scheduleResult, 1)
	pavCh := make(chan pavResult, 1)
	substitutionCh := make(chan substitutionResult, 1)

	go func() {
		v, err := uc.stock(ctx)
		stockCh <- stockResult{v, err}
	}()
	go func() {
		v, err := uc.schedules(ctx, now)
		scheduleCh <- scheduleResult{v, err}
	}()
	go func() {
		v, err := uc.pav(ctx)
		pavCh <- pavResult{v, err}
	}()
	go func() {
		v, err := uc.substitutions(ctx)
		substitutionCh <- substitutionResult{v, err}
	}()

	stock := <-stockCh
	schedules := <-scheduleCh
	pav := <-pavCh
	substitutions := <-substitutionCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: estoque: %w", stock.err)
	}
	if schedules.err != nil {
		return nil, fmt.Errorf("dashboard: agenda: %w", schedules.err)
	}
	if pav.err != nil {
		return nil, fmt.Errorf("dashboard: pav: %w", pav.err)
	}
	if substitutions.err != nil {
		return nil, fmt.Errorf("dashboard: substituições: %w", substitutions.err)
	}

	return &dto.DashboardSummary{
		Stock:         stock.v,
		Schedules:     schedules.v,
		Pav:           pav.v,
		Substitutions: substitutions.v,
		DateLabel:     monthLabel(now),
	}, nil
}

func (uc *DashboardUseCase) stock(ctx context.Context) (dto.StockSummary, error) {
	list, err := uc.src.Materials.List(ctx, dto.MaterialListQuery{})
	if err != nil {
		return dto.StockSummary{}, err
	}
	s := dto.StockSummary{Total: list.Total}
	for _, m := range list.Items {
		switch inventory.StockStatus(m.Status) {
		case inventory.StatusNone:
			s.None++
		case inventory.StatusLow:
			s.Low++
		default:
			s.Normal++
		}
	}
	return s, nil
}

func (uc *DashboardUseCase) schedules(ctx context.Context, now time.Time) (dto.ScheduleSummary, error) {
	list, err := uc.src.Schedules.List(ctx, dto.ScheduleListQuery{})
	if err != nil {
		return dto.ScheduleSummary{}, err
	}
	s := dto.ScheduleSummary{Upcoming: list.Total}
	y, m, d := now.Date()
	for _, item := range list.Items {
		sy, sm, sd := item.StartTime.In(uc.loc).Date()
		if sy == y && sm == m && sd == d {
			s.Today++
		}
	}
	return s, nil
}

func (uc *DashboardUseCase) pav(ctx context.Context) (dto.PavSummary, error) {
	list, err := uc.src.Pav.List(ctx, dto.PavListQuery{})
	if err != nil {
		return dto.PavSummary{}, err
	}
	s := dto.PavSummary{Total: list.Total}
	for _, p := range list.Items {
		if !p.SentToInquirer {
			s.Pending++
		}
	}
	return s, nil
}

func (uc *DashboardUseCase) substitutions(ctx context.Context) (dto.SubstitutionSummary, error) {
	list, err := uc.src.Substitutions.List(ctx, dto.SubstitutionListQuery{})
	if err != nil {
		return dto.SubstitutionSummary{}, err
	}
	return dto.SubstitutionSummary{Total: list.Total, Pending: list.Pending, Completed: list.Completed}, nil
}

// monthLabel etiqueta legible del mes, ej: "Maio 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
