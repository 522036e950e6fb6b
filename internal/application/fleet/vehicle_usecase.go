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

// VehicleUseCase mantenimiento del cadastro de viaturas.
type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(vehicleRepo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicleRepo: vehicleRepo, now: time.Now}
}

// Create registra una viatura. Prefijo repetido: domain.ErrDuplicate.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := buildVehicle(in)
	if err != nil {
		return nil, err
	}
	v.ID = uuid.New().String()
	v.CreatedAt = uc.now()
	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := toVehicleResponse(v)
	return &out, nil
}

// Update modifica la viatura. Un cambio de prefijo se propaga a sus reservas.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	current, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	v, err := buildVehicle(in)
	if err != nil {
		return nil, err
	}
	v.ID, v.CreatedAt = current.ID, current.CreatedAt
	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	out := toVehicleResponse(v)
	return &out, nil
}

// Delete elimina la viatura. Con reservas asociadas devuelve domain.ErrVehicleInUse.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	v, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.vehicleRepo.Delete(ctx, id)
}

// List viaturas ordenadas por prefijo, filtradas por prefijo o placa.
func (uc *VehicleUseCase) List(ctx context.Context, q dto.VehicleListQuery) (*dto.VehicleListResponse, error) {
	list, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.TrimSpace(q.Search)
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		if search != "" && !textnorm.ContainsFold(v.Prefix, search) && !textnorm.ContainsFold(v.Plate, search) {
			continue
		}
		items = append(items, toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{Items: items, Total: len(items)}, nil
}

// Import carga viaturas de una planilla (primera fila = encabezado). Se omiten filas sin prefijo,
// con prefijo "0" o con prefijo ya registrado.
func (uc *VehicleUseCase) Import(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	if len(rows) == 0 {
		return nil, domain.NewValidationError("planilla vacía")
	}
	header := rows[0]
	prefixCol := sheet.Column(header, 0, "prefixo")
	plateCol := sheet.Column(header, 0, "placa")
	if prefixCol < 0 {
		return nil, domain.NewValidationError("no se encontró la columna PREFIXO", "prefixo")
	}
	modelCol := sheet.Column(header, 0, "modelo", "marca")
	fractionCol := sheet.Column(header, 0, "unidade", "fracao")

	existing, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[v.Prefix] = true
	}
	now := uc.now()
	result := &dto.ImportResult{}
	batch := make([]*entity.Vehicle, 0, len(rows)-1)
	for _, row := range rows[1:] {
		prefix := textnorm.Upper(sheet.Cell(row, prefixCol))
		if prefix == "" || prefix == "0" || seen[prefix] {
			result.Skipped++
			continue
		}
		seen[prefix] = true
		batch = append(batch, &entity.Vehicle{
			ID:        uuid.New().String(),
			Prefix:    prefix,
			Plate:     textnorm.Upper(sheet.Cell(row, plateCol)),
			Model:     sheet.Cell(row, modelCol),
			Fraction:  sheet.Cell(row, fractionCol),
			CreatedAt: now,
		})
	}
	if len(batch) > 0 {
		if err := uc.vehicleRepo.CreateMany(ctx, batch); err != nil {
			return nil, err
		}
	}
	result.Imported = len(batch)
	return result, nil
}

func buildVehicle(in dto.VehicleRequest) (*entity.Vehicle, error) {
	v := &entity.Vehicle{
		Prefix:   textnorm.Upper(in.Prefix),
		Plate:    textnorm.Upper(in.Plate),
		Model:    strings.TrimSpace(in.Model),
		Fraction: strings.TrimSpace(in.Fraction),
	}
	var fields []string
	if v.Prefix == "" {
		fields = append(fields, "prefix")
	}
	if v.Plate == "" {
		fields = append(fields, "plate")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("prefijo y placa son obligatorios", fields...)
	}
	return v, nil
}
