package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/sheet"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/inventory"
	"github.com/jhoicas/frota-api/internal/domain/repository"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// ImportObservation observación de los movimientos de entrada creados al importar planillas.
const ImportObservation = "Importação de planilha"

// Alias de encabezado aceptados en la planilla de materiales.
var (
	materialNameAliases       = []string{"material", "nome", "name", "item", "descricao"}
	materialQuantityAliases   = []string{"quantidade", "qtd", "quantity", "saldo", "quant"}
	materialUnitAliases       = []string{"unidade", "medida", "unit", "und", "tipo"}
	materialCompatibleAliases = []string{"compatibilidade", "veiculos", "compativel"}
)

// MaterialUseCase casos de uso del catálogo de materiales. La cantidad nunca se edita directo.
type MaterialUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	now          func() time.Time
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{txRunner: txRunner, materialRepo: materialRepo, now: time.Now}
}

// Create da de alta un material con cantidad 0.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("el nombre del material es obligatorio", "name")
	}
	m := &entity.Material{
		ID:                 uuid.New().String(),
		Name:               name,
		Quantity:           0,
		Unit:               unitOrDefault(in.Unit),
		CompatibleVehicles: strings.TrimSpace(in.CompatibleVehicles),
		CreatedAt:          uc.now(),
	}
	if err := uc.materialRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Update modifica nombre, unidad y vehículos compatibles.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("el nombre del material es obligatorio", "name")
		}
		m.Name = name
	}
	if in.Unit != nil {
		m.Unit = unitOrDefault(*in.Unit)
	}
	if in.CompatibleVehicles != nil {
		m.CompatibleVehicles = strings.TrimSpace(*in.CompatibleVehicles)
	}
	if err := uc.materialRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Delete elimina el material (sus movimientos se eliminan en cascada).
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.materialRepo.Delete(ctx, id)
}

// List filtra por estado derivado y búsqueda (nombre o vehículos compatibles) y ordena.
func (uc *MaterialUseCase) List(ctx context.Context, q dto.MaterialListQuery) (*dto.MaterialListResponse, error) {
	var (
		status    inventory.StockStatus
		hasFilter bool
	)
	if s := strings.TrimSpace(q.Status); s != "" && !strings.EqualFold(s, "ALL") {
		parsed, ok := inventory.ParseStatus(strings.ToUpper(s))
		if !ok {
			return nil, domain.NewValidationError("estado inválido", "status")
		}
		status, hasFilter = parsed, true
	}
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.TrimSpace(q.Search)
	filtered := make([]*entity.Material, 0, len(materials))
	for _, m := range materials {
		if hasFilter && inventory.Status(m.Quantity) != status {
			continue
		}
		if search != "" && !textnorm.ContainsFold(m.Name, search) && !textnorm.ContainsFold(m.CompatibleVehicles, search) {
			continue
		}
		filtered = append(filtered, m)
	}
	if err := sortMaterials(filtered, q.Sort, q.Dir); err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(filtered))
	for _, m := range filtered {
		items = append(items, toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items, Total: len(items)}, nil
}

// Import crea materiales desde filas de planilla (la primera es el encabezado).
// Cada material nace en 0 y, si la fila trae cantidad, se registra una ENTRADA por ese valor.
// Toda la importación va en una sola transacción.
func (uc *MaterialUseCase) Import(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	if len(rows) == 0 {
		return nil, domain.NewValidationError("planilla vacía")
	}
	header := rows[0]
	nameCol := sheet.Column(header, 0, materialNameAliases...)
	if nameCol < 0 {
		return nil, domain.NewValidationError("no se encontró la columna de material", "material")
	}
	qtyCol := sheet.Column(header, 0, materialQuantityAliases...)
	unitCol := sheet.Column(header, 0, materialUnitAliases...)
	compatCol := sheet.Column(header, 0, materialCompatibleAliases...)

	now := uc.now()
	result := &dto.ImportResult{}
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, materialRepo repository.MaterialRepository) error {
		for _, row := range rows[1:] {
			name := sheet.Cell(row, nameCol)
			if name == "" {
				result.Skipped++
				continue
			}
			m := &entity.Material{
				ID:                 uuid.New().String(),
				Name:               name,
				Unit:               unitOrDefault(sheet.Cell(row, unitCol)),
				CompatibleVehicles: sheet.Cell(row, compatCol),
				CreatedAt:          now,
			}
			if err := materialRepo.Create(ctx, m); err != nil {
				return err
			}
			if qty := sheet.Quantity(sheet.Cell(row, qtyCol)); qty > 0 {
				mov := &entity.Movement{
					ID:          uuid.New().String(),
					MaterialID:  m.ID,
					Type:        entity.MovementTypeEntry,
					Quantity:    qty,
					Observation: ImportObservation,
					CreatedAt:   now,
				}
				if err := movRepo.Create(ctx, mov); err != nil {
					return err
				}
				if err := applyAdjustments(ctx, materialRepo, inventory.InsertAdjustments(mov)); err != nil {
					return err
				}
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// sortMaterials ordena por name (por defecto), quantity, status o unit; dir "desc" invierte.
func sortMaterials(list []*entity.Material, field, dir string) error {
	var less func(a, b *entity.Material) bool
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "", "name":
		less = func(a, b *entity.Material) bool { return textnorm.Fold(a.Name) < textnorm.Fold(b.Name) }
	case "quantity":
		less = func(a, b *entity.Material) bool { return a.Quantity < b.Quantity }
	case "status":
		less = func(a, b *entity.Material) bool {
			return inventory.Status(a.Quantity).Rank() < inventory.Status(b.Quantity).Rank()
		}
	case "unit":
		less = func(a, b *entity.Material) bool { return textnorm.Fold(a.Unit) < textnorm.Fold(b.Unit) }
	default:
		return domain.NewValidationError("campo de orden inválido", "sort")
	}
	desc := strings.EqualFold(strings.TrimSpace(dir), "desc")
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
	return nil
}

func unitOrDefault(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return entity.DefaultUnit
	}
	return u
}
