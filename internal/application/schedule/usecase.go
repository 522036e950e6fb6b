package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/repository"
	sched "github.com/jhoicas/frota-api/internal/domain/schedule"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// Vistas del listado de agenda.
const (
	ViewFuture = "FUTURE" // reservas que aún no terminaron
	ViewAll    = "ALL"
)

// UseCase agenda de viaturas: altas simples y en lote, ediciones, reasignaciones y bajas.
// Toda escritura verifica conflictos con las reservas persistidas de la misma viatura salvo que venga force.
type UseCase struct {
	txRunner     TxRunner
	scheduleRepo repository.ScheduleRepository
	loc          *time.Location
	now          func() time.Time
}

// NewUseCase construye el caso de uso. loc es la zona en la que se interpretan fechas y horas.
func NewUseCase(txRunner TxRunner, scheduleRepo repository.ScheduleRepository, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{txRunner: txRunner, scheduleRepo: scheduleRepo, loc: loc, now: time.Now}
}

// SetClock reemplaza el reloj usado en altas y en la vista FUTURE.
func (uc *UseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Create registra una reserva simple. Rechaza fin <= inicio.
func (uc *UseCase) Create(ctx context.Context, in dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	s, err := uc.buildSingle(in)
	if err != nil {
		return nil, err
	}
	s.ID = uuid.New().String()
	s.CreatedAt = uc.now()

	err = uc.txRunner.Run(ctx, []string{s.VehiclePrefix}, func(repo repository.ScheduleRepository, vehicles repository.VehicleRepository) error {
		if err := ensureVehicle(ctx, vehicles, s.VehiclePrefix); err != nil {
			return err
		}
		if !in.Force {
			if err := checkConflict(ctx, repo, s.VehiclePrefix, sched.IntervalOf(s), s.ID, ""); err != nil {
				return err
			}
		}
		return repo.CreateMany(ctx, []*entity.VehicleSchedule{s})
	})
	if err != nil {
		return nil, err
	}
	if in.Force {
		logForced("create", s.VehiclePrefix, 1)
	}
	out := ToResponse(s)
	return &out, nil
}

// Update reemplaza una reserva. La verificación de conflicto la excluye a sí misma.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	updated, err := uc.buildSingle(in)
	if err != nil {
		return nil, err
	}
	current, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	prefixes := []string{current.VehiclePrefix, updated.VehiclePrefix}
	err = uc.txRunner.Run(ctx, prefixes, func(repo repository.ScheduleRepository, vehicles repository.VehicleRepository) error {
		if err := ensureVehicle(ctx, vehicles, updated.VehiclePrefix); err != nil {
			return err
		}
		if !in.Force {
			if err := checkConflict(ctx, repo, updated.VehiclePrefix, sched.IntervalOf(updated), updated.ID, ""); err != nil {
				return err
			}
		}
		return repo.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	if in.Force {
		logForced("update", updated.VehiclePrefix, 1)
	}
	out := ToResponse(updated)
	return &out, nil
}

// CreateBatch registra la misma franja horaria en varias fechas. Si la hora de fin no es posterior
// a la de inicio la reserva termina al día siguiente. Se detiene en el primer conflicto (informando la fecha)
// y persiste todas las filas en una sola inserción.
func (uc *UseCase) CreateBatch(ctx context.Context, in dto.BatchScheduleRequest) (*dto.ScheduleBatchResponse, error) {
	prefix := strings.TrimSpace(in.VehiclePrefix)
	driver := textnorm.Upper(in.DriverName)
	var fields []string
	if prefix == "" {
		fields = append(fields, "vehicle_prefix")
	}
	if driver == "" {
		fields = append(fields, "driver_name")
	}
	start, errStart := sched.ParseClock(strings.TrimSpace(in.StartHour))
	if errStart != nil {
		fields = append(fields, "start_hour")
	}
	end, errEnd := sched.ParseClock(strings.TrimSpace(in.EndHour))
	if errEnd != nil {
		fields = append(fields, "end_hour")
	}
	dates, err := uc.parseDates(in.Dates)
	if err != nil {
		fields = append(fields, "dates")
	}
	if len(fields) > 0 {
		msg := "reserva en lote inválida"
		if err != nil {
			msg = err.Error()
		}
		return nil, domain.NewValidationError(msg, fields...)
	}

	now := uc.now()
	reason := textnorm.Upper(in.Reason)
	observations := strings.TrimSpace(in.Observations)
	rows := make([]*entity.VehicleSchedule, 0, len(dates))
	for _, d := range dates {
		iv := sched.BuildInterval(d, start, end, uc.loc)
		rows = append(rows, &entity.VehicleSchedule{
			ID:            uuid.New().String(),
			VehiclePrefix: prefix,
			DriverName:    driver,
			Reason:        reason,
			StartTime:     iv.Start,
			EndTime:       iv.End,
			Observations:  observations,
			CreatedAt:     now,
		})
	}

	err = uc.txRunner.Run(ctx, []string{prefix}, func(repo repository.ScheduleRepository, vehicles repository.VehicleRepository) error {
		if err := ensureVehicle(ctx, vehicles, prefix); err != nil {
			return err
		}
		if !in.Force {
			existing, err := repo.ListByVehicle(ctx, prefix)
			if err != nil {
				return err
			}
			for i, row := range rows {
				if hit := sched.FindConflict(existing, prefix, sched.IntervalOf(row), ""); hit != nil {
					return &sched.ConflictError{
						VehiclePrefix: prefix,
						Date:          dates[i].Format(sched.DateLayout),
						Candidate:     sched.IntervalOf(row),
						Existing:      hit,
					}
				}
			}
		}
		return repo.CreateMany(ctx, rows)
	})
	if err != nil {
		return nil, err
	}
	if in.Force {
		logForced("batch", prefix, len(rows))
	}
	return &dto.ScheduleBatchResponse{Items: toResponses(rows), Forced: in.Force}, nil
}

// ReassignVehicle mueve las reservas seleccionadas a otra viatura conservando sus ventanas.
// Verifica todas antes de escribir; luego confirma una por una.
func (uc *UseCase) ReassignVehicle(ctx context.Context, in dto.ReassignVehicleRequest) (*dto.ScheduleBatchResponse, error) {
	prefix := strings.TrimSpace(in.VehiclePrefix)
	if prefix == "" {
		return nil, domain.NewValidationError("la viatura destino es obligatoria", "vehicle_prefix")
	}
	selected, err := uc.loadSelection(ctx, in.IDs)
	if err != nil {
		return nil, err
	}
	edit := batchEdit{
		apply: func(s *entity.VehicleSchedule) {
			s.VehiclePrefix = prefix
		},
		write: func(ctx context.Context, repo repository.ScheduleRepository, s *entity.VehicleSchedule) error {
			return repo.UpdateVehicle(ctx, s.ID, s.VehiclePrefix)
		},
	}
	return uc.applyBatch(ctx, selected, edit, in.Force)
}

// ReassignTime reemplaza solo las horas de las reservas seleccionadas; cada una conserva su fecha de inicio.
func (uc *UseCase) ReassignTime(ctx context.Context, in dto.ReassignTimeRequest) (*dto.ScheduleBatchResponse, error) {
	var fields []string
	start, err := sched.ParseClock(strings.TrimSpace(in.StartHour))
	if err != nil {
		fields = append(fields, "start_hour")
	}
	end, err := sched.ParseClock(strings.TrimSpace(in.EndHour))
	if err != nil {
		fields = append(fields, "end_hour")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("horario inválido", fields...)
	}
	selected, err := uc.loadSelection(ctx, in.IDs)
	if err != nil {
		return nil, err
	}
	edit := batchEdit{
		apply: func(s *entity.VehicleSchedule) {
			iv := sched.Retime(sched.IntervalOf(s), start, end, uc.loc)
			s.StartTime, s.EndTime = iv.Start, iv.End
		},
		write: func(ctx context.Context, repo repository.ScheduleRepository, s *entity.VehicleSchedule) error {
			return repo.UpdateWindow(ctx, s.ID, s.StartTime, s.EndTime)
		},
	}
	return uc.applyBatch(ctx, selected, edit, in.Force)
}

// batchEdit describe una edición en lote: apply cambia solo sus campos sobre una copia
// y write persiste solo esos campos.
type batchEdit struct {
	apply func(s *entity.VehicleSchedule)
	write func(ctx context.Context, repo repository.ScheduleRepository, s *entity.VehicleSchedule) error
}

func (e batchEdit) on(s *entity.VehicleSchedule) *entity.VehicleSchedule {
	next := *s
	e.apply(&next)
	return &next
}

// applyBatch verifica cada reserva editada contra su viatura (excluyéndose) y aborta en el primer
// conflicto; después actualiza cada una en su propia transacción, releyendo la fila bajo el
// bloqueo para no pisar cambios ajenos. Un error a mitad de camino devuelve BatchError con lo
// ya confirmado.
func (uc *UseCase) applyBatch(ctx context.Context, selected []*entity.VehicleSchedule, edit batchEdit, force bool) (*dto.ScheduleBatchResponse, error) {
	plan := make([]*entity.VehicleSchedule, 0, len(selected))
	prefixes := make([]string, 0, len(selected))
	for _, s := range selected {
		next := edit.on(s)
		plan = append(plan, next)
		prefixes = append(prefixes, next.VehiclePrefix)
	}
	err := uc.txRunner.Run(ctx, prefixes, func(repo repository.ScheduleRepository, vehicles repository.VehicleRepository) error {
		seen := make(map[string]bool)
		for _, s := range plan {
			if !seen[s.VehiclePrefix] {
				if err := ensureVehicle(ctx, vehicles, s.VehiclePrefix); err != nil {
					return err
				}
				seen[s.VehiclePrefix] = true
			}
			if force {
				continue
			}
			if err := checkConflict(ctx, repo, s.VehiclePrefix, sched.IntervalOf(s), s.ID, s.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(selected))
	for _, s := range selected {
		excluded[s.ID] = true
	}
	committed := make([]string, 0, len(plan))
	saved := make([]*entity.VehicleSchedule, 0, len(plan))
	for i, planned := range plan {
		locks := []string{planned.VehiclePrefix, selected[i].VehiclePrefix}
		var s *entity.VehicleSchedule
		err := uc.txRunner.Run(ctx, locks, func(repo repository.ScheduleRepository, _ repository.VehicleRepository) error {
			fresh, err := repo.GetByID(ctx, planned.ID)
			if err != nil {
				return err
			}
			if fresh == nil {
				return domain.ErrNotFound
			}
			s = edit.on(fresh)
			if s.VehiclePrefix != planned.VehiclePrefix {
				// movida a otra viatura después de la verificación
				return domain.ErrConflict
			}
			if !force {
				existing, err := repo.ListByVehicle(ctx, s.VehiclePrefix)
				if err != nil {
					return err
				}
				others := make([]*entity.VehicleSchedule, 0, len(existing))
				for _, e := range existing {
					if !excluded[e.ID] {
						others = append(others, e)
					}
				}
				if hit := sched.FindConflict(others, s.VehiclePrefix, sched.IntervalOf(s), s.ID); hit != nil {
					return &sched.ConflictError{VehiclePrefix: s.VehiclePrefix, ScheduleID: s.ID, Candidate: sched.IntervalOf(s), Existing: hit}
				}
			}
			return edit.write(ctx, repo, s)
		})
		if err != nil {
			log.Warn().Err(err).
				Strs("committed", committed).
				Str("failed_id", planned.ID).
				Msg("edición en lote interrumpida")
			return nil, &BatchError{Committed: committed, FailedID: planned.ID, Err: err}
		}
		committed = append(committed, s.ID)
		saved = append(saved, s)
	}
	if force {
		for _, p := range uniquePrefixes(saved) {
			logForced("reassign", p, len(saved))
		}
	}
	return &dto.ScheduleBatchResponse{Items: toResponses(saved), Forced: force}, nil
}

// Delete elimina una reserva.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.scheduleRepo.Delete(ctx, id)
}

// DeleteMany elimina todas las reservas indicadas en una sola sentencia.
func (uc *UseCase) DeleteMany(ctx context.Context, ids []string) error {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return domain.NewValidationError("seleccione al menos una reserva", "ids")
	}
	return uc.scheduleRepo.DeleteMany(ctx, ids)
}

// List agenda ordenada por inicio. view FUTURE (por defecto) muestra las que terminan después de ahora;
// date filtra por día de inicio; search busca en prefijo o conductor.
func (uc *UseCase) List(ctx context.Context, q dto.ScheduleListQuery) (*dto.ScheduleListResponse, error) {
	view := strings.ToUpper(strings.TrimSpace(q.View))
	if view == "" {
		view = ViewFuture
	}
	if view != ViewFuture && view != ViewAll {
		return nil, domain.NewValidationError("vista inválida", "view")
	}
	date := strings.TrimSpace(q.Date)
	if date != "" {
		if _, err := sched.ParseDate(date, uc.loc); err != nil {
			return nil, domain.NewValidationError(err.Error(), "date")
		}
	}
	all, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	search := strings.TrimSpace(q.Search)
	items := make([]dto.ScheduleResponse, 0, len(all))
	for _, s := range all {
		if view == ViewFuture && !s.EndTime.After(now) {
			continue
		}
		if date != "" && s.StartTime.In(uc.loc).Format(sched.DateLayout) != date {
			continue
		}
		if search != "" && !textnorm.ContainsFold(s.VehiclePrefix, search) && !textnorm.ContainsFold(s.DriverName, search) {
			continue
		}
		items = append(items, ToResponse(s))
	}
	return &dto.ScheduleListResponse{Items: items, Total: len(items)}, nil
}

// buildSingle valida el formulario simple: fecha + hora de inicio y de fin, fin estrictamente posterior.
func (uc *UseCase) buildSingle(in dto.ScheduleRequest) (*entity.VehicleSchedule, error) {
	prefix := strings.TrimSpace(in.VehiclePrefix)
	driver := textnorm.Upper(in.DriverName)
	var fields []string
	if prefix == "" {
		fields = append(fields, "vehicle_prefix")
	}
	if driver == "" {
		fields = append(fields, "driver_name")
	}
	startDate, err := sched.ParseDate(strings.TrimSpace(in.StartDate), uc.loc)
	if err != nil {
		fields = append(fields, "start_date")
	}
	endDateRaw := strings.TrimSpace(in.EndDate)
	if endDateRaw == "" {
		endDateRaw = strings.TrimSpace(in.StartDate)
	}
	endDate, err := sched.ParseDate(endDateRaw, uc.loc)
	if err != nil {
		fields = append(fields, "end_date")
	}
	startClock, err := sched.ParseClock(strings.TrimSpace(in.StartHour))
	if err != nil {
		fields = append(fields, "start_hour")
	}
	endClock, err := sched.ParseClock(strings.TrimSpace(in.EndHour))
	if err != nil {
		fields = append(fields, "end_hour")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("reserva inválida", fields...)
	}
	iv := sched.Interval{
		Start: sched.At(startDate, startClock, uc.loc),
		End:   sched.At(endDate, endClock, uc.loc),
	}
	if !iv.Valid() {
		return nil, domain.NewValidationError("el fin debe ser posterior al inicio", "end_date", "end_hour")
	}
	return &entity.VehicleSchedule{
		VehiclePrefix: prefix,
		DriverName:    driver,
		Reason:        textnorm.Upper(in.Reason),
		StartTime:     iv.Start,
		EndTime:       iv.End,
		Observations:  strings.TrimSpace(in.Observations),
	}, nil
}

// parseDates exige al menos una fecha y rechaza repetidas.
func (uc *UseCase) parseDates(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, domain.NewValidationError("seleccione al menos una fecha", "dates")
	}
	seen := make(map[string]bool, len(raw))
	out := make([]time.Time, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		d, err := sched.ParseDate(r, uc.loc)
		if err != nil {
			return nil, err
		}
		if seen[r] {
			return nil, domain.NewValidationError("fecha repetida: "+r, "dates")
		}
		seen[r] = true
		out = append(out, d)
	}
	return out, nil
}

// loadSelection carga las reservas seleccionadas en el orden pedido; falta alguna: ErrNotFound.
func (uc *UseCase) loadSelection(ctx context.Context, raw []string) ([]*entity.VehicleSchedule, error) {
	idList := cleanIDs(raw)
	if len(idList) == 0 {
		return nil, domain.NewValidationError("seleccione al menos una reserva", "ids")
	}
	found, err := uc.scheduleRepo.ListByIDs(ctx, idList)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.VehicleSchedule, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	out := make([]*entity.VehicleSchedule, 0, len(idList))
	for _, id := range idList {
		s, ok := byID[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		out = append(out, s)
	}
	return out, nil
}

// checkConflict busca en las reservas persistidas de la viatura; scheduleID identifica la reserva
// en los errores de edición en lote.
func checkConflict(ctx context.Context, repo repository.ScheduleRepository, prefix string, candidate sched.Interval, excludeID, scheduleID string) error {
	existing, err := repo.ListByVehicle(ctx, prefix)
	if err != nil {
		return err
	}
	if hit := sched.FindConflict(existing, prefix, candidate, excludeID); hit != nil {
		return &sched.ConflictError{VehiclePrefix: prefix, ScheduleID: scheduleID, Candidate: candidate, Existing: hit}
	}
	return nil
}

func ensureVehicle(ctx context.Context, vehicles repository.VehicleRepository, prefix string) error {
	v, err := vehicles.GetByPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.NewValidationError("viatura no registrada: "+prefix, "vehicle_prefix")
	}
	return nil
}

// logForced deja rastro de las escrituras que saltaron la verificación de conflicto.
func logForced(op, prefix string, n int) {
	log.Warn().
		Str("op", op).
		Str("vehicle_prefix", prefix).
		Int("schedules", n).
		Msg("agenda guardada con force")
}

func uniquePrefixes(list []*entity.VehicleSchedule) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !seen[s.VehiclePrefix] {
			seen[s.VehiclePrefix] = true
			out = append(out, s.VehiclePrefix)
		}
	}
	return out
}

func cleanIDs(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
