package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. Es el ÚNICO camino
// de escritura que cambia InventoryItem.Quantity.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RecordMovement inicia una transacción, bloquea la fila del ítem, valida que
// el stock no quede negativo y persiste cantidad nueva + movimiento como una
// unidad atómica. userName viene del resolver de identidad (claims del token).
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, userName string, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	if in.ItemID == "" {
		return nil, fmt.Errorf("%w: item_id es requerido", domain.ErrInvalidInput)
	}
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, fmt.Errorf("%w: type debe ser ENTRY o EXIT", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	reason := in.Reason
	if reason == "" {
		reason = entity.MotivoAjuste
	}

	now := time.Now()
	var created *entity.ProductMovement

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, in.ItemID)
		}
		mov, err := applyMovement(itemRepo, movRepo, item, in.Type, in.Quantity, reason, userName, now)
		if err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(created), nil
}

// RegisterEntryInTx aplica una entrada de stock usando los repositorios de la
// transacción del caller (recepción de pedidos). El ítem ya debe venir
// bloqueado con GetForUpdate.
func (uc *RecordMovementUseCase) RegisterEntryInTx(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	item *entity.InventoryItem,
	quantity int,
	reason, userName string,
	now time.Time,
) error {
	_, err := applyMovement(itemRepo, movRepo, item, entity.MovementTypeEntry, quantity, reason, userName, now)
	return err
}

// applyMovement ejecuta el read-modify-write sobre la fila ya bloqueada:
// valida el invariante de stock no negativo, escribe la cantidad nueva y
// persiste el movimiento inmutable.
func applyMovement(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	item *entity.InventoryItem,
	movType string,
	quantity int,
	reason, userName string,
	now time.Time,
) (*entity.ProductMovement, error) {
	mov := &entity.ProductMovement{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Type:      movType,
		Quantity:  quantity,
		Reason:    reason,
		UserName:  userName,
		CreatedAt: now,
	}
	newQuantity := item.Quantity + mov.Delta()
	if newQuantity < 0 {
		return nil, fmt.Errorf("%w: %s tiene %d unidades y la salida pide %d",
			domain.ErrNegativeStock, item.Name, item.Quantity, quantity)
	}
	if err := itemRepo.UpdateQuantity(item.ID, newQuantity, now); err != nil {
		return nil, err
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	item.Quantity = newQuantity
	item.LastUpdated = now
	return mov, nil
}

// ListMovements lista movimientos más recientes primero, con filtro opcional por ítem.
func (uc *RecordMovementUseCase) ListMovements(itemID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	movements := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		movements = append(movements, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Movements: movements,
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.ProductMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		ItemName:  m.ItemName,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		UserName:  m.UserName,
		CreatedAt: m.CreatedAt,
	}
}
