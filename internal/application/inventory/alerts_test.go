package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// El umbral es inclusivo: quantity == min_quantity ya dispara alerta.
func TestAlertas_UmbralInclusivo(t *testing.T) {
	itemRepo := newFakeItemRepo(
		&entity.InventoryItem{ID: "a", Name: "Cable USB", SKU: "USB-01", Quantity: 5, MinQuantity: 5},
		&entity.InventoryItem{ID: "b", Name: "Cargador", SKU: "CHG-01", Quantity: 6, MinQuantity: 5},
		&entity.InventoryItem{ID: "c", Name: "Pilas AA", SKU: "AA-01", Quantity: 0, MinQuantity: 4},
	)
	uc := inventory.NewAlertUseCase(itemRepo)

	alerts, err := uc.Active(inventory.NewAckSet())
	require.NoError(t, err)

	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ItemID)
	}
	assert.ElementsMatch(t, []string{"a", "c"}, ids,
		"alertan los ítems en o por debajo del mínimo, no los que están por encima")
}

// Los ítems reconocidos por el cliente se filtran de la proyección.
func TestAlertas_ReconocidosFiltrados(t *testing.T) {
	itemRepo := newFakeItemRepo(
		&entity.InventoryItem{ID: "a", Name: "Cable USB", SKU: "USB-01", Quantity: 1, MinQuantity: 5},
		&entity.InventoryItem{ID: "b", Name: "Cargador", SKU: "CHG-01", Quantity: 1, MinQuantity: 5},
	)
	uc := inventory.NewAlertUseCase(itemRepo)

	alerts, err := uc.Active(inventory.NewAckSet("a"))
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "b", alerts[0].ItemID)
}

// Acknowledge es idempotente y ClearAll reactiva todo.
func TestAckSet_IdempotenciaYClear(t *testing.T) {
	s := inventory.NewAckSet()

	s.Acknowledge("x")
	s.Acknowledge("x")
	s.Acknowledge("x")
	assert.True(t, s.Has("x"))
	assert.Len(t, s, 1, "reconocer dos veces no duplica")

	s.Acknowledge("y")
	assert.Len(t, s, 2)

	s.ClearAll()
	assert.False(t, s.Has("x"))
	assert.False(t, s.Has("y"))
	assert.Empty(t, s)
}

// IDs vacíos se ignoran al construir y al reconocer.
func TestAckSet_IgnoraVacios(t *testing.T) {
	s := inventory.NewAckSet("", "a", "")
	s.Acknowledge("")
	assert.Len(t, s, 1)
	assert.True(t, s.Has("a"))
}
