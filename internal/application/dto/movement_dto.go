package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
type RecordMovementRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=ENTRY EXIT"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason,omitempty"`
}

// MovementResponse representación pública de un ProductMovement.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos (más recientes primero).
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}
