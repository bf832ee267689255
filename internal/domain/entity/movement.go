package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "ENTRY" // entrada
	MovementTypeExit  = "EXIT"  // salida
)

// MotivoAjuste es la razón por defecto cuando el caller no indica una.
const MotivoAjuste = "Ajuste"

// ProductMovement es el registro inmutable de auditoría de un cambio de stock.
// Cada cambio de Quantity en InventoryItem corresponde a exactamente un movimiento
// (ENTRY = +Quantity, EXIT = -Quantity). Nunca se actualiza ni se borra.
type ProductMovement struct {
	ID        string
	ItemID    string
	ItemName  string // desnormalizado para listados; no es referencia viva
	Type      string
	Quantity  int // siempre positivo; el signo lo da Type
	Reason    string
	UserName  string // nombre del usuario que registró el movimiento
	CreatedAt time.Time
}

// Delta devuelve el cambio con signo que este movimiento aplica al stock.
func (m *ProductMovement) Delta() int {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}
