package inventory

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// AckSet es el conjunto de alertas reconocidas por el cliente. Vive fuera del
// servidor (el cliente lo persiste localmente y lo envía en cada consulta);
// aquí solo actúa como filtro de solo lectura sobre la proyección.
type AckSet map[string]struct{}

// NewAckSet construye el conjunto a partir de los IDs reconocidos.
func NewAckSet(ids ...string) AckSet {
	s := make(AckSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Acknowledge marca un ítem como reconocido. Idempotente.
func (s AckSet) Acknowledge(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

// ClearAll vacía el conjunto.
func (s AckSet) ClearAll() {
	clear(s)
}

// Has indica si el ítem ya fue reconocido.
func (s AckSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// AlertUseCase proyección de alertas de stock bajo. No persiste nada: se
// recalcula sobre el estado actual de los ítems en cada consulta.
type AlertUseCase struct {
	itemRepo repository.ItemRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(itemRepo repository.ItemRepository) *AlertUseCase {
	return &AlertUseCase{itemRepo: itemRepo}
}

// Active devuelve los ítems con quantity <= min_quantity que el cliente aún no
// reconoció. Un ítem reconocido que vuelve a caer bajo el umbral sigue filtrado
// hasta que el cliente limpie su conjunto (staleness aceptada, no es un bug).
func (uc *AlertUseCase) Active(acked AckSet) ([]dto.AlertItem, error) {
	items, err := uc.itemRepo.ListBelowMin()
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.AlertItem, 0, len(items))
	for _, item := range items {
		if acked.Has(item.ID) {
			continue
		}
		alerts = append(alerts, dto.AlertItem{
			ItemID:      item.ID,
			Name:        item.Name,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			MinQuantity: item.MinQuantity,
		})
	}
	return alerts, nil
}
