package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/search"
)

// ItemUseCase CRUD de ítems del inventario. Quantity puede inicializarse al
// crear y corregirse al actualizar; los cambios de stock del día a día van por
// el camino auditado de movimientos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem. El SKU se normaliza pero NO se exige único: varios
// lotes del mismo componente pueden compartirlo.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: quantity y min_quantity no pueden ser negativos", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         search.NormalizeSKU(in.SKU),
		CategoryID:  in.CategoryID,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		LastUpdated: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	return toItemResponse(item), nil
}

// Update actualiza un ítem. Si viene Quantity se aplica directamente SIN crear
// un ProductMovement: es una corrección administrativa, asimetría heredada del
// diseño original y conservada a propósito (ver DESIGN.md).
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.SKU != nil {
		item.SKU = search.NormalizeSKU(*in.SKU)
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, fmt.Errorf("%w: min_quantity no puede ser negativo", domain.ErrInvalidInput)
		}
		item.MinQuantity = *in.MinQuantity
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Price = *in.Price
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista ítems por nombre ascendente, con búsqueda opcional. El término se
// pliega (minúsculas, sin acentos) antes del ILIKE para que "Resistência"
// encuentre "resistencia".
func (uc *ItemUseCase) List(searchTerm string, limit, offset int) (*dto.ItemListResponse, error) {
	if searchTerm != "" {
		searchTerm = search.Fold(searchTerm)
	}
	list, err := uc.repo.List(searchTerm, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un ítem. Los movimientos históricos se conservan (guardan el
// nombre desnormalizado) y las líneas de pedidos PENDING que lo referencien se
// saltarán al recibir.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		SKU:         i.SKU,
		CategoryID:  i.CategoryID,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		Price:       i.Price,
		LastUpdated: i.LastUpdated,
	}
}
