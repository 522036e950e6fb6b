package fleet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/sheet"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	plates "github.com/jhoicas/frota-api/internal/domain/fleet"
	"github.com/jhoicas/frota-api/internal/domain/repository"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// Estados del filtro de sustituciones.
const (
	SubstitutionDone        = "DONE"
	SubstitutionPending     = "PENDING"
	SubstitutionNotRequired = "NOT_REQUIRED"
)

// headerScanRows filas iniciales donde se busca el encabezado de la planilla de sustituciones.
const headerScanRows = 10

// SubstitutionUseCase sustituciones de flota (viatura recibida / viatura indicada para baja).
type SubstitutionUseCase struct {
	repo repository.FleetSubstitutionRepository
	now  func() time.Time
}

// NewSubstitutionUseCase construye el caso de uso.
func NewSubstitutionUseCase(repo repository.FleetSubstitutionRepository) *SubstitutionUseCase {
	return &SubstitutionUseCase{repo: repo, now: time.Now}
}

// Create registra una sustitución. Placa repetida devuelve *plates.DuplicatePlateError salvo force.
func (uc *SubstitutionUseCase) Create(ctx context.Context, in dto.SubstitutionRequest) (*dto.SubstitutionResponse, error) {
	s, err := buildSubstitution(in)
	if err != nil {
		return nil, err
	}
	s.ID = uuid.New().String()
	s.CreatedAt = uc.now()
	if !in.Force {
		if err := uc.checkDuplicate(ctx, s, ""); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := toSubstitutionResponse(s)
	return &out, nil
}

// Update reemplaza la sustitución; la verificación de placa repetida la excluye a sí misma.
func (uc *SubstitutionUseCase) Update(ctx context.Context, id string, in dto.SubstitutionRequest) (*dto.SubstitutionResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	s, err := buildSubstitution(in)
	if err != nil {
		return nil, err
	}
	s.ID, s.CreatedAt = current.ID, current.CreatedAt
	if !in.Force {
		if err := uc.checkDuplicate(ctx, s, s.ID); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := toSubstitutionResponse(s)
	return &out, nil
}

// Delete elimina la sustitución.
func (uc *SubstitutionUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List filtra y marca placas repetidas. Pending y Completed se cuentan sobre todas las sustituciones.
func (uc *SubstitutionUseCase) List(ctx context.Context, q dto.SubstitutionListQuery) (*dto.SubstitutionListResponse, error) {
	status := strings.ToUpper(strings.TrimSpace(q.Status))
	switch status {
	case "", "ALL", SubstitutionDone, SubstitutionPending, SubstitutionNotRequired:
	default:
		return nil, domain.NewValidationError("estado inválido", "status")
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	received, indicated := plates.PlateCounts(list)
	search := strings.TrimSpace(q.Search)
	city, unit := strings.TrimSpace(q.City), strings.TrimSpace(q.Unit)

	out := &dto.SubstitutionListResponse{Items: make([]dto.SubstitutionResponse, 0, len(list))}
	for _, s := range list {
		done := completed(s)
		if done {
			out.Completed++
		} else {
			out.Pending++
		}
		switch {
		case status == SubstitutionDone && !done,
			status == SubstitutionPending && done,
			status == SubstitutionNotRequired && !s.NotRequired:
			continue
		}
		if city != "" && !strings.EqualFold(city, "ALL") && s.ReceivedCity != city {
			continue
		}
		if unit != "" && !strings.EqualFold(unit, "ALL") && s.ReceivedUnit != unit {
			continue
		}
		if search != "" && !textnorm.ContainsFold(s.ReceivedPrefix, search) &&
			!textnorm.ContainsFold(s.ReceivedPlate, search) && !textnorm.ContainsFold(s.ReceivedBGPM, search) {
			continue
		}
		item := toSubstitutionResponse(s)
		item.ReceivedDuplicate = received[plates.NormalizePlate(s.ReceivedPlate)] > 1
		item.IndicatedDuplicate = indicated[plates.NormalizePlate(s.IndicatedPlate)] > 1
		out.Items = append(out.Items, item)
	}
	out.Total = len(out.Items)
	return out, nil
}

// Import ubica el encabezado (PREFIXO, PLACA y BGPM) en las primeras filas. La primera pareja
// PREFIXO/PLACA es la viatura recibida y la segunda, si existe, la indicada. Se omiten filas sin prefijo.
func (uc *SubstitutionUseCase) Import(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	hi := sheet.Locate(rows, headerScanRows, []string{"prefixo"}, []string{"placa"}, []string{"bgpm"})
	if hi < 0 {
		return nil, domain.NewValidationError("encabezado no encontrado (PREFIXO, PLACA, BGPM)")
	}
	h := rows[hi]
	var (
		prefixCol    = sheet.Column(h, 0, "prefixo")
		plateCol     = sheet.Column(h, 0, "placa")
		bgpmCol      = sheet.Column(h, 0, "bgpm")
		modelCol     = sheet.Column(h, 0, "marca", "modelo")
		cityCol      = sheet.Column(h, 0, "municipio", "destino")
		unitCol      = sheet.Column(h, 0, "unidade")
		indPrefixCol = sheet.Column(h, prefixCol+1, "prefixo")
		indPlateCol  = sheet.Column(h, plateCol+1, "placa")
	)
	now := uc.now()
	result := &dto.ImportResult{}
	batch := make([]*entity.FleetSubstitution, 0, len(rows)-hi)
	for _, row := range rows[hi+1:] {
		prefix := sheet.Cell(row, prefixCol)
		if prefix == "" {
			result.Skipped++
			continue
		}
		batch = append(batch, &entity.FleetSubstitution{
			ID:              uuid.New().String(),
			ReceivedPrefix:  prefix,
			ReceivedPlate:   plates.NormalizePlate(sheet.Cell(row, plateCol)),
			ReceivedModel:   sheet.Cell(row, modelCol),
			ReceivedBGPM:    sheet.Cell(row, bgpmCol),
			ReceivedCity:    sheet.Cell(row, cityCol),
			ReceivedUnit:    sheet.Cell(row, unitCol),
			IndicatedPrefix: sheet.Cell(row, indPrefixCol),
			IndicatedPlate:  plates.NormalizePlate(sheet.Cell(row, indPlateCol)),
			CreatedAt:       now,
		})
	}
	if len(batch) > 0 {
		if err := uc.repo.CreateMany(ctx, batch); err != nil {
			return nil, err
		}
	}
	result.Imported = len(batch)
	return result, nil
}

func (uc *SubstitutionUseCase) checkDuplicate(ctx context.Context, s *entity.FleetSubstitution, excludeID string) error {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	if dup := plates.FindDuplicatePlate(existing, s, excludeID); dup != nil {
		return dup
	}
	return nil
}

// buildSubstitution valida la viatura recibida; con NotRequired se descartan los datos indicados.
func buildSubstitution(in dto.SubstitutionRequest) (*entity.FleetSubstitution, error) {
	s := &entity.FleetSubstitution{
		ReceivedPrefix: strings.TrimSpace(in.ReceivedPrefix),
		ReceivedPlate:  plates.NormalizePlate(in.ReceivedPlate),
		ReceivedModel:  strings.TrimSpace(in.ReceivedModel),
		ReceivedBGPM:   strings.TrimSpace(in.ReceivedBGPM),
		ReceivedCity:   strings.TrimSpace(in.ReceivedCity),
		ReceivedUnit:   strings.TrimSpace(in.ReceivedUnit),
		NotRequired:    in.NotRequired,
	}
	if !in.NotRequired {
		s.IndicatedPrefix = strings.TrimSpace(in.IndicatedPrefix)
		s.IndicatedPlate = plates.NormalizePlate(in.IndicatedPlate)
	}
	var fields []string
	if s.ReceivedPrefix == "" {
		fields = append(fields, "received_prefix")
	}
	if s.ReceivedPlate == "" {
		fields = append(fields, "received_plate")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("los datos de la viatura recibida son obligatorios", fields...)
	}
	return s, nil
}

// completed sustitución resuelta: no requerida o con prefijo y placa indicados.
func completed(s *entity.FleetSubstitution) bool {
	return s.NotRequired || (s.IndicatedPrefix != "" && s.IndicatedPlate != "")
}
