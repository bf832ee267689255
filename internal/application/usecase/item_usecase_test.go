package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// fakeItemRepo en memoria; registra el último término de búsqueda recibido.
type fakeItemRepo struct {
	items      map[string]*entity.InventoryItem
	lastSearch string
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

func (r *fakeItemRepo) List(search string, _, _ int) ([]*entity.InventoryItem, error) {
	r.lastSearch = search
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowMin() ([]*entity.InventoryItem, error) { return nil, nil }

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func precio(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Create normaliza el SKU y acepta stock inicial.
func TestItemCreate_NormalizaSKU(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	out, err := uc.Create(dto.CreateItemRequest{
		Name:        "Resistencia 10k",
		SKU:         "  rés-10k ",
		CategoryID:  "cat-1",
		Quantity:    10,
		MinQuantity: 2,
		Price:       precio("2.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "RES-10K", out.SKU, "el SKU queda canónico: sin espacios, sin acentos, mayúsculas")
	assert.Equal(t, 10, out.Quantity)
	assert.NotEmpty(t, out.ID)
}

// El SKU no es único: dos ítems pueden compartirlo.
func TestItemCreate_SKUNoEsUnico(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	_, err := uc.Create(dto.CreateItemRequest{Name: "Lote A", SKU: "RES-10K", CategoryID: "c"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateItemRequest{Name: "Lote B", SKU: "RES-10K", CategoryID: "c"})
	require.NoError(t, err)
	assert.Len(t, repo.items, 2)
}

func TestItemCreate_Invalidos(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "X", SKU: "X", CategoryID: "c", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateItemRequest{Name: "X", SKU: "X", CategoryID: "c", MinQuantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateItemRequest{Name: "X", SKU: "X", CategoryID: "c", Price: precio("-0.01")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Asimetría conservada a propósito: corregir quantity por Update NO deja
// rastro en el log de movimientos.
func TestItemUpdate_CorreccionDeStockSinMovimiento(t *testing.T) {
	repo := newFakeItemRepo(&entity.InventoryItem{
		ID: "item-1", Name: "Cable USB", SKU: "USB-01", Quantity: 4,
	})
	uc := usecase.NewItemUseCase(repo)

	qty := 9
	out, err := uc.Update("item-1", dto.UpdateItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Quantity)
	// No hay MovementRepository en este caso de uso: el camino auditado es
	// exclusivamente RecordMovement.
}

// Campos no enviados quedan intactos.
func TestItemUpdate_CamposParciales(t *testing.T) {
	repo := newFakeItemRepo(&entity.InventoryItem{
		ID: "item-1", Name: "Cable USB", SKU: "USB-01", CategoryID: "cat-1",
		Quantity: 4, MinQuantity: 2, Price: precio("4.00"),
	})
	uc := usecase.NewItemUseCase(repo)

	name := "Cable USB-C"
	out, err := uc.Update("item-1", dto.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Cable USB-C", out.Name)
	assert.Equal(t, "USB-01", out.SKU)
	assert.Equal(t, 4, out.Quantity)
	assert.True(t, out.Price.Equal(precio("4.00")))
}

func TestItemUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	name := "X"
	_, err := uc.Update("fantasma", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El término de búsqueda llega al repositorio plegado: minúsculas y sin acentos.
func TestItemList_PliegaElTermino(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	_, err := uc.List("Resistência", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "resistencia", repo.lastSearch)
}

func TestItemGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	_, err := uc.GetByID("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
