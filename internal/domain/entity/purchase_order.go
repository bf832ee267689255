package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido de compra.
// PENDING es el único estado con transiciones; RECEIVED y CANCELLED son terminales.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusReceived  = "RECEIVED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderLine es la instantánea de un ítem al momento de crear el pedido.
// Name, SKU y UnitPrice quedan congelados: ediciones posteriores del ítem
// no se propagan a pedidos existentes (es un value type, no una referencia).
type OrderLine struct {
	ItemID    string          `json:"itemId"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Subtotal devuelve cantidad × precio unitario de la línea.
func (l OrderLine) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice)
}

// PurchaseOrder representa un pedido a proveedor. Las líneas se guardan
// embebidas (JSONB) porque son instantáneas, no relaciones vivas.
type PurchaseOrder struct {
	ID         string
	Supplier   string
	Lines      []OrderLine
	TotalValue decimal.Decimal
	Status     string
	CreatedAt  time.Time
	ReceivedAt *time.Time // solo cuando Status == RECEIVED
}

// Reference devuelve la referencia corta del pedido usada en los motivos
// de movimiento al recibir (últimos 8 caracteres del ID).
func (o *PurchaseOrder) Reference() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[len(o.ID)-8:]
}
