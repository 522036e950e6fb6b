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
	"github.com/jhoicas/frota-api/internal/domain/repository"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// PMNumberDigits largo máximo del número PM del encargado.
const PMNumberDigits = 7

// Estados del filtro de procesos PAV.
const (
	PavStatusSent    = "SENT"
	PavStatusPending = "PENDING"
)

// PavUseCase procesos administrativos de accidentes con viatura.
type PavUseCase struct {
	pavRepo repository.PavProcessRepository
	loc     *time.Location
	now     func() time.Time
}

// NewPavUseCase construye el caso de uso.
func NewPavUseCase(pavRepo repository.PavProcessRepository, loc *time.Location) *PavUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &PavUseCase{pavRepo: pavRepo, loc: loc, now: time.Now}
}

// Create registra un proceso tras validar los campos obligatorios.
func (uc *PavUseCase) Create(ctx context.Context, in dto.PavProcessRequest) (*dto.PavProcessResponse, error) {
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New().String()
	p.CreatedAt = uc.now()
	if err := uc.pavRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toPavResponse(p)
	return &out, nil
}

// Update reemplaza los datos del proceso.
func (uc *PavUseCase) Update(ctx context.Context, id string, in dto.PavProcessRequest) (*dto.PavProcessResponse, error) {
	current, err := uc.pavRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	p.ID, p.CreatedAt = current.ID, current.CreatedAt
	if err := uc.pavRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPavResponse(p)
	return &out, nil
}

// Delete elimina el proceso.
func (uc *PavUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.pavRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.pavRepo.Delete(ctx, id)
}

// List filtra por búsqueda, estado de envío al encargado y fracción.
func (uc *PavUseCase) List(ctx context.Context, q dto.PavListQuery) (*dto.PavProcessListResponse, error) {
	status := strings.ToUpper(strings.TrimSpace(q.Status))
	switch status {
	case "", "ALL", PavStatusSent, PavStatusPending:
	default:
		return nil, domain.NewValidationError("estado inválido", "status")
	}
	list, err := uc.pavRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.TrimSpace(q.Search)
	fraction := strings.TrimSpace(q.Fraction)
	items := make([]dto.PavProcessResponse, 0, len(list))
	for _, p := range list {
		if status == PavStatusSent && !p.SentToInquirer || status == PavStatusPending && p.SentToInquirer {
			continue
		}
		if fraction != "" && !strings.EqualFold(fraction, "ALL") && p.Fraction != fraction {
			continue
		}
		if search != "" && !matchesPav(p, search) {
			continue
		}
		items = append(items, toPavResponse(p))
	}
	return &dto.PavProcessListResponse{Items: items, Total: len(items)}, nil
}

// Import carga procesos desde planilla; se omiten filas sin prefijo o sin REDS.
func (uc *PavUseCase) Import(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	if len(rows) == 0 {
		return nil, domain.NewValidationError("planilla vacía")
	}
	h := rows[0]
	var (
		fractionCol = sheet.Column(h, 0, "fracao", "unidade", "companhia")
		prefixCol   = sheet.Column(h, 0, "prefixo", "viatura")
		plateCol    = sheet.Column(h, 0, "placa")
		redsCol     = sheet.Column(h, 0, "reds", "bo")
		pavCol      = sheet.Column(h, 0, "pav", "n_pav")
		inquirerCol = sheet.Column(h, 0, "encarregado")
		pmCol       = sheet.Column(h, 0, "pm", "n pm")
		sentCol     = sheet.Column(h, 0, "enviado", "status")
		osCol       = sheet.Column(h, 0, "os", "ordem")
		obsCol      = sheet.Column(h, 0, "obs", "observacao")
	)
	if prefixCol < 0 || redsCol < 0 {
		return nil, domain.NewValidationError("la planilla debe tener columnas Prefixo y REDS", "prefixo", "reds")
	}
	now := uc.now()
	result := &dto.ImportResult{}
	batch := make([]*entity.PavProcess, 0, len(rows)-1)
	for _, row := range rows[1:] {
		prefix := sheet.Cell(row, prefixCol)
		reds := sheet.Cell(row, redsCol)
		if prefix == "" || reds == "" {
			result.Skipped++
			continue
		}
		batch = append(batch, &entity.PavProcess{
			ID:               uuid.New().String(),
			Fraction:         sheet.Cell(row, fractionCol),
			VehiclePrefix:    prefix,
			VehiclePlate:     sheet.Cell(row, plateCol),
			RedsNumber:       reds,
			PavNumber:        sheet.Cell(row, pavCol),
			Inquirer:         textnorm.Upper(sheet.Cell(row, inquirerCol)),
			InquirerPMNumber: textnorm.Digits(sheet.Cell(row, pmCol), PMNumberDigits),
			SentToInquirer:   sentValue(sheet.Cell(row, sentCol)),
			OSNumber:         sheet.Cell(row, osCol),
			Observations:     sheet.Cell(row, obsCol),
			CreatedAt:        now,
		})
	}
	if len(batch) > 0 {
		if err := uc.pavRepo.CreateMany(ctx, batch); err != nil {
			return nil, err
		}
	}
	result.Imported = len(batch)
	return result, nil
}

// build valida el formulario: fracción, viatura, REDS, fecha del accidente, PAV, encargado, número PM,
// número y fecha de solicitud de OS son obligatorios.
func (uc *PavUseCase) build(in dto.PavProcessRequest) (*entity.PavProcess, error) {
	p := &entity.PavProcess{
		Fraction:         strings.TrimSpace(in.Fraction),
		VehiclePrefix:    strings.TrimSpace(in.VehiclePrefix),
		VehiclePlate:     textnorm.Upper(in.VehiclePlate),
		RedsNumber:       strings.TrimSpace(in.RedsNumber),
		PavNumber:        strings.TrimSpace(in.PavNumber),
		Inquirer:         textnorm.Upper(in.Inquirer),
		InquirerPMNumber: textnorm.Digits(in.InquirerPMNumber, PMNumberDigits),
		SentToInquirer:   in.SentToInquirer,
		OSNumber:         strings.TrimSpace(in.OSNumber),
		Observations:     strings.TrimSpace(in.Observations),
	}
	var fields []string
	required := []struct {
		name  string
		value string
	}{
		{"fraction", p.Fraction},
		{"vehicle_prefix", p.VehiclePrefix},
		{"vehicle_plate", p.VehiclePlate},
		{"reds_number", p.RedsNumber},
		{"pav_number", p.PavNumber},
		{"inquirer", p.Inquirer},
		{"inquirer_pm_number", p.InquirerPMNumber},
		{"os_number", p.OSNumber},
	}
	for _, r := range required {
		if r.value == "" {
			fields = append(fields, r.name)
		}
	}
	var err error
	if p.AccidentDate, err = uc.optionalDate(in.AccidentDate); err != nil || p.AccidentDate == nil {
		fields = append(fields, "accident_date")
	}
	if p.OSRequestDate, err = uc.optionalDate(in.OSRequestDate); err != nil || p.OSRequestDate == nil {
		fields = append(fields, "os_request_date")
	}
	if p.OSFollowupDate, err = uc.optionalDate(in.OSFollowupDate); err != nil {
		fields = append(fields, "os_followup_date")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("complete los campos obligatorios", fields...)
	}
	return p, nil
}

func (uc *PavUseCase) optionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, uc.loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func matchesPav(p *entity.PavProcess, search string) bool {
	for _, v := range []string{p.VehiclePrefix, p.RedsNumber, p.PavNumber, p.Inquirer, p.InquirerPMNumber, p.VehiclePlate} {
		if textnorm.ContainsFold(v, search) {
			return true
		}
	}
	return false
}

// sentValue interpreta la columna de envío ("Sim", "OK", "X").
func sentValue(s string) bool {
	f := textnorm.Fold(s)
	return strings.Contains(f, "sim") || strings.Contains(f, "ok") || sheet.Bool(s)
}
