package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	// UpdateStatusFrom aplica la transición from→to como un único UPDATE
	// condicional y reporta si afectó alguna fila. Dos receive concurrentes
	// sobre el mismo pedido no pueden pasar ambos el chequeo.
	UpdateStatusFrom(id, from, to string, receivedAt *time.Time) (bool, error)
}
