package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	SKU         string          `json:"sku" validate:"required"`
	CategoryID  string          `json:"category_id" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"min_quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil = sin cambio.
// Quantity aquí es una corrección administrativa: NO genera ProductMovement
// (el camino auditado es POST /api/movements).
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	MinQuantity *int             `json:"min_quantity,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ItemResponse representación pública de un InventoryItem.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	CategoryID  string          `json:"category_id"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated time.Time       `json:"last_updated"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AlertItem un ítem en o por debajo de su stock mínimo, aún no reconocido.
type AlertItem struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
