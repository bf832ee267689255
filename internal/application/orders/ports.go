package orders

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OrderTxRunner como inventory.TxRunner pero con el repositorio de pedidos
// dentro de la misma transacción: la transición de estado y las entradas de
// stock de la recepción se confirman o revierten juntas.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}

// EntryRecorder aplica una entrada de stock dentro de la transacción del
// caller. Lo implementa inventory.RecordMovementUseCase.
type EntryRecorder interface {
	RegisterEntryInTx(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		item *entity.InventoryItem,
		quantity int,
		reason, userName string,
		now time.Time,
	) error
}

// OrderPDFGenerator genera el documento PDF de un pedido de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder) ([]byte, error)
}
