package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para ProductMovement (DIP).
// Solo inserta y lista: los movimientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.ProductMovement) error
	List(itemID string, limit, offset int) ([]*entity.ProductMovement, error)
}
