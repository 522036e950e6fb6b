package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/domain"
	"github.com/jhoicas/frota-api/internal/domain/entity"
	"github.com/jhoicas/frota-api/internal/domain/inventory"
	"github.com/jhoicas/frota-api/internal/domain/repository"
	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// MovementUseCase registra, edita y elimina movimientos de stock de forma transaccional.
// Cada operación bloquea las filas de material afectadas (SELECT FOR UPDATE) en orden de id
// y aplica el efecto del movimiento sobre la cantidad antes del Commit.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	materialRepo repository.MaterialRepository
	loc          *time.Location
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso. loc es la zona usada para fechas sin hora.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
	loc *time.Location,
) *MovementUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		materialRepo: materialRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// Register valida y persiste un movimiento nuevo; la cantidad del material cambia en la misma transacción.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.buildMovement(in, true)
	if err != nil {
		return nil, err
	}
	mov.ID = uuid.New().String()

	var material *entity.Material
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, materialRepo repository.MaterialRepository) error {
		locked, err := lockMaterials(ctx, materialRepo, inventory.MaterialIDs(mov))
		if err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := applyAdjustments(ctx, materialRepo, inventory.InsertAdjustments(mov)); err != nil {
			return err
		}
		material = locked[mov.MaterialID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(mov, material)
	return &out, nil
}

// Update reemplaza los datos de un movimiento y ajusta la cantidad con new.effect - old.effect
// (o sobre ambos materiales si cambió el material).
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	updated, err := uc.buildMovement(in, false)
	if err != nil {
		return nil, err
	}
	updated.ID = id

	var material *entity.Material
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, materialRepo repository.MaterialRepository) error {
		old, err := movRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if updated.CreatedAt.IsZero() {
			updated.CreatedAt = old.CreatedAt
		}
		locked, err := lockMaterials(ctx, materialRepo, inventory.MaterialIDs(old, updated))
		if err != nil {
			return err
		}
		if err := movRepo.Update(ctx, updated); err != nil {
			return err
		}
		if err := applyAdjustments(ctx, materialRepo, inventory.UpdateAdjustments(old, updated)); err != nil {
			return err
		}
		material = locked[updated.MaterialID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(updated, material)
	return &out, nil
}

// Delete elimina el movimiento y revierte su efecto sobre la cantidad del material.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, materialRepo repository.MaterialRepository) error {
		old, err := movRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if _, err := lockMaterials(ctx, materialRepo, inventory.MaterialIDs(old)); err != nil {
			return err
		}
		if err := movRepo.Delete(ctx, id); err != nil {
			return err
		}
		return applyAdjustments(ctx, materialRepo, inventory.DeleteAdjustments(old))
	})
}

// List devuelve los movimientos (más recientes primero) con nombre y unidad del material.
func (uc *MovementUseCase) List(ctx context.Context, q dto.MovementListQuery) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{MaterialID: q.MaterialID, Type: strings.ToUpper(strings.TrimSpace(q.Type))}
	if filter.Type != "" && !entity.IsValidMovementType(filter.Type) {
		return nil, domain.NewValidationError("tipo de movimiento inválido", "type")
	}
	movements, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}
	search := strings.TrimSpace(q.Search)
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, mov := range movements {
		out := toMovementResponse(mov, byID[mov.MaterialID])
		if search != "" && !matchesMovement(out, search) {
			continue
		}
		items = append(items, out)
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func matchesMovement(m dto.MovementResponse, search string) bool {
	return textnorm.ContainsFold(m.MaterialName, search) ||
		textnorm.ContainsFold(m.Requester, search) ||
		textnorm.ContainsFold(m.VehiclePrefix, search) ||
		textnorm.ContainsFold(m.GuideNumber, search)
}

// buildMovement valida la entrada. En edición una fecha vacía conserva la original (CreatedAt cero).
func (uc *MovementUseCase) buildMovement(in dto.RegisterMovementRequest, isNew bool) (*entity.Movement, error) {
	var fields []string
	materialID := strings.TrimSpace(in.MaterialID)
	if materialID == "" {
		fields = append(fields, "material_id")
	}
	movType := strings.ToUpper(strings.TrimSpace(in.Type))
	if !entity.IsValidMovementType(movType) {
		fields = append(fields, "type")
	}
	if in.Quantity <= 0 {
		fields = append(fields, "quantity")
	}
	requester := strings.TrimSpace(in.Requester)
	prefix := strings.TrimSpace(in.VehiclePrefix)
	if movType == entity.MovementTypeExit {
		if requester == "" {
			fields = append(fields, "requester")
		}
		if prefix == "" {
			fields = append(fields, "vehicle_prefix")
		}
	}
	date, err := ParseMovementDate(in.CreatedAt, uc.loc)
	if err != nil {
		fields = append(fields, "created_at")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError("movimiento inválido", fields...)
	}
	if date.IsZero() && isNew {
		date = uc.now()
	}
	return &entity.Movement{
		MaterialID:    materialID,
		Type:          movType,
		Quantity:      in.Quantity,
		Requester:     requester,
		VehiclePrefix: prefix,
		GuideNumber:   strings.TrimSpace(in.GuideNumber),
		Observation:   strings.TrimSpace(in.Observation),
		CreatedAt:     date,
	}, nil
}

// ParseMovementDate acepta YYYY-MM-DD (medianoche en loc) o RFC3339. Vacío devuelve tiempo cero.
func ParseMovementDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// lockMaterials bloquea los materiales en el orden recibido (ya ordenado por id). Falta alguno: ErrNotFound.
func lockMaterials(ctx context.Context, repo repository.MaterialRepository, ids []string) (map[string]*entity.Material, error) {
	locked := make(map[string]*entity.Material, len(ids))
	for _, id := range ids {
		m, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		locked[id] = m
	}
	return locked, nil
}

func applyAdjustments(ctx context.Context, repo repository.MaterialRepository, adjustments []inventory.Adjustment) error {
	for _, a := range adjustments {
		if err := repo.AdjustQuantity(ctx, a.MaterialID, a.Delta); err != nil {
			return err
		}
	}
	return nil
}
