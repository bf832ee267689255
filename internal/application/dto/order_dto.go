package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest una línea de pedido al crearlo: solo ítem y cantidad,
// el resto se congela desde el ítem al momento de la creación.
type OrderLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest body para POST /api/purchase-orders.
// Líneas duplicadas del mismo ítem se aceptan como líneas independientes.
type CreateOrderRequest struct {
	Supplier string             `json:"supplier" validate:"required"`
	Lines    []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineResponse instantánea de una línea tal como quedó congelada.
type OrderLineResponse struct {
	ItemID    string          `json:"item_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse representación pública de un PurchaseOrder.
type OrderResponse struct {
	ID         string              `json:"id"`
	Supplier   string              `json:"supplier"`
	Lines      []OrderLineResponse `json:"lines"`
	TotalValue decimal.Decimal     `json:"total_value"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	ReceivedAt *time.Time          `json:"received_at,omitempty"`
}

// OrderListResponse listado paginado de pedidos (más recientes primero).
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Page   PageResponse    `json:"page"`
}
