package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un componente electrónico en el almacén.
// Quantity solo se modifica por el camino transaccional de movimientos;
// la edición directa vía CRUD es una corrección administrativa sin auditoría.
type InventoryItem struct {
	ID          string
	Name        string
	SKU         string // identificador del proveedor; no es único (varios lotes del mismo componente)
	CategoryID  string
	Quantity    int
	MinQuantity int
	Price       decimal.Decimal // precio unitario de referencia
	LastUpdated time.Time
}

// BelowMin indica si el ítem está en o por debajo de su umbral de stock mínimo.
func (i *InventoryItem) BelowMin() bool {
	return i.Quantity <= i.MinQuantity
}
