package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
// GetForUpdate y UpdateQuantity solo tienen sentido dentro de una transacción
// (ver inventory.TxRunner): bloquean la fila para el read-modify-write atómico.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	UpdateQuantity(id string, quantity int, updatedAt time.Time) error
	List(search string, limit, offset int) ([]*entity.InventoryItem, error)
	ListBelowMin() ([]*entity.InventoryItem, error)
	Delete(id string) error
}
