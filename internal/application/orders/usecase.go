package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OrderUseCase maneja el ciclo de vida del pedido de compra:
// PENDING --receive--> RECEIVED, PENDING --cancel--> CANCELLED.
// Solo la recepción toca el stock; la cancelación nunca.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.PurchaseOrderRepository
	itemRepo  repository.ItemRepository
	inventory EntryRecorder
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.ItemRepository,
	inventory EntryRecorder,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		inventory: inventory,
	}
}

// CreateOrder crea un pedido PENDING congelando nombre, SKU y precio actuales
// de cada ítem en la línea. No toca stock ni crea movimientos: eso solo ocurre
// al recibir. Líneas duplicadas del mismo ítem se aceptan tal cual.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Supplier == "" {
		return nil, fmt.Errorf("%w: supplier es requerido", domain.ErrInvalidInput)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: el pedido necesita al menos una línea", domain.ErrInvalidInput)
	}

	lines := make([]entity.OrderLine, 0, len(in.Lines))
	total := decimal.Zero
	for _, l := range in.Lines {
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, l.ItemID)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para %s", domain.ErrInvalidInput, item.SKU)
		}
		line := entity.OrderLine{
			ItemID:    item.ID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  l.Quantity,
			UnitPrice: item.Price,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		Supplier:   in.Supplier,
		Lines:      lines,
		TotalValue: total,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ReceiveOrder ejecuta la transición PENDING→RECEIVED y acredita el stock de
// cada línea, todo en una sola transacción. La transición se reclama primero
// con un UPDATE condicional: de dos receive concurrentes solo uno afecta la
// fila, el otro recibe ErrInvalidOrderState y el stock se acredita una única
// vez. Una línea cuyo ítem fue borrado después de crear el pedido se salta en
// lugar de fallar toda la recepción.
func (uc *OrderUseCase) ReceiveOrder(ctx context.Context, userName, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("%w: el pedido está %s", domain.ErrInvalidOrderState, order.Status)
	}

	now := time.Now()
	reason := fmt.Sprintf("Recepción pedido %s", order.Reference())

	err = uc.txRunner.RunOrder(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		claimed, err := orderRepo.UpdateStatusFrom(orderID, entity.OrderStatusPending, entity.OrderStatusReceived, &now)
		if err != nil {
			return err
		}
		if !claimed {
			// Otro receive (o un cancel) ganó la carrera.
			return fmt.Errorf("%w: el pedido ya no está %s", domain.ErrInvalidOrderState, entity.OrderStatusPending)
		}
		for _, line := range order.Lines {
			item, err := itemRepo.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				continue // ítem borrado después de crear el pedido
			}
			if err := uc.inventory.RegisterEntryInTx(itemRepo, movRepo, item, line.Quantity, reason, userName, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusReceived
	order.ReceivedAt = &now
	return toOrderResponse(order), nil
}

// CancelOrder ejecuta la transición PENDING→CANCELLED. Sin efectos sobre stock
// ni movimientos: un pedido cancelado nunca afectó el inventario.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	cancelled, err := uc.orderRepo.UpdateStatusFrom(orderID, entity.OrderStatusPending, entity.OrderStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	if !cancelled {
		order, err := uc.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("%w: el pedido está %s", domain.ErrInvalidOrderState, order.Status)
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetOrder obtiene un pedido por ID.
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	return toOrderResponse(order), nil
}

// ListOrders lista pedidos más recientes primero.
func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	ordersOut := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		ordersOut = append(ordersOut, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Orders: ordersOut,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ItemID:    l.ItemID,
			SKU:       l.SKU,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Supplier:   o.Supplier,
		Lines:      lines,
		TotalValue: o.TotalValue,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		ReceivedAt: o.ReceivedAt,
	}
}
