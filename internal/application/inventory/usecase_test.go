package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo(items ...*entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		cp := *it
		r.items[it.ID] = &cp
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	it.LastUpdated = updatedAt
	return nil
}

func (r *fakeItemRepo) List(string, int, int) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowMin() ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0)
	for _, it := range r.items {
		if it.BelowMin() {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.ProductMovement
}

func (r *fakeMovementRepo) Create(m *entity.ProductMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(itemID string, limit, offset int) ([]*entity.ProductMovement, error) {
	out := make([]*entity.ProductMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes. Simula el
// rollback que da la tx real: si fn devuelve error, el caso de uso no expone
// ningún efecto (y los tests verifican que no hubo escritura previa al error).
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	return fn(r.itemRepo, r.movRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func itemConStock(qty int) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          "item-1",
		Name:        "Resistencia 10k",
		SKU:         "RES-10K",
		Quantity:    qty,
		MinQuantity: 2,
	}
}

// Una salida válida descuenta el stock y deja un movimiento con usuario y motivo.
func TestRecordMovement_SalidaDescuentaStock(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(10))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	out, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "item-1",
		Type:     entity.MovementTypeExit,
		Quantity: 4,
		Reason:   "Venta mostrador",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExit, out.Type)
	assert.Equal(t, 4, out.Quantity, "el movimiento guarda la magnitud, siempre positiva")
	assert.Equal(t, "Venta mostrador", out.Reason)
	assert.Equal(t, "Camila", out.UserName)

	after, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, 6, after.Quantity, "10 - 4 = 6")
	require.Len(t, movRepo.movements, 1)
}

// Una entrada suma stock.
func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(3))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	_, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "item-1",
		Type:     entity.MovementTypeEntry,
		Quantity: 7,
	})
	require.NoError(t, err)

	after, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, 10, after.Quantity)
}

// Invariante central: el stock nunca queda negativo. Una salida mayor al
// disponible se rechaza completa, sin efecto parcial.
func TestRecordMovement_SalidaMayorAlStockRechazada(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(3))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	_, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "item-1",
		Type:     entity.MovementTypeExit,
		Quantity: 5,
	})
	require.ErrorIs(t, err, domain.ErrNegativeStock)

	after, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, 3, after.Quantity, "el stock debe quedar intacto")
	assert.Empty(t, movRepo.movements, "no debe registrarse ningún movimiento")
}

// Una salida que deja el stock exactamente en cero es válida.
func TestRecordMovement_SalidaHastaCeroEsValida(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(3))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	_, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "item-1",
		Type:     entity.MovementTypeExit,
		Quantity: 3,
	})
	require.NoError(t, err)

	after, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, 0, after.Quantity)
}

// Sin motivo explícito, el movimiento queda como "Ajuste".
func TestRecordMovement_MotivoPorDefectoEsAjuste(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(5))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	out, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "item-1",
		Type:     entity.MovementTypeEntry,
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MotivoAjuste, out.Reason)
}

// Entradas mal formadas se rechazan antes de abrir transacción.
func TestRecordMovement_EntradasInvalidas(t *testing.T) {
	itemRepo := newFakeItemRepo(itemConStock(5))
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	casos := []dto.RecordMovementRequest{
		{ItemID: "", Type: entity.MovementTypeEntry, Quantity: 1},
		{ItemID: "item-1", Type: "TRANSFER", Quantity: 1},
		{ItemID: "item-1", Type: entity.MovementTypeExit, Quantity: 0},
		{ItemID: "item-1", Type: entity.MovementTypeExit, Quantity: -2},
	}
	for _, in := range casos {
		_, err := uc.RecordMovement(context.Background(), "Camila", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, movRepo.movements)
}

// Ítem inexistente → ErrNotFound.
func TestRecordMovement_ItemInexistente(t *testing.T) {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{itemRepo, movRepo}, movRepo)

	_, err := uc.RecordMovement(context.Background(), "Camila", dto.RecordMovementRequest{
		ItemID:   "no-existe",
		Type:     entity.MovementTypeEntry,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
