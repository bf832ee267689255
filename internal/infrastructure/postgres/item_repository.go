package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
// No hay índice único sobre sku: varios lotes pueden compartirlo.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = "id, name, sku, category_id, quantity, min_quantity, price, last_updated"

// Create persiste un ítem nuevo.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_items (id, name, sku, category_id, quantity, min_quantity, price, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.CategoryID,
		item.Quantity, item.MinQuantity, item.Price, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE) para el
// read-modify-write del motor de stock. Solo tiene sentido dentro de una tx.
func (r *ItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza todos los campos editables del ítem.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, sku = $3, category_id = $4, quantity = $5,
		    min_quantity = $6, price = $7, last_updated = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.CategoryID,
		item.Quantity, item.MinQuantity, item.Price, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantity escribe la cantidad nueva calculada por el motor de stock.
// El caller ya tiene la fila bloqueada con GetForUpdate.
func (r *ItemRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	query := `UPDATE inventory_items SET quantity = $2, last_updated = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// List lista ítems por nombre ascendente. search llega ya plegado por el caso
// de uso; del lado de la tabla, unaccent() pliega los nombres almacenados para
// que la comparación sea insensible a acentos en ambos extremos. Requiere la
// extensión unaccent (CREATE EXTENSION IF NOT EXISTS unaccent).
func (r *ItemRepo) List(search string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE unaccent(name) ILIKE $%d OR sku ILIKE $%d", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListBelowMin lista los ítems en o por debajo de su stock mínimo
// (proyección para las alertas, sin paginar).
func (r *ItemRepo) ListBelowMin() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE quantity <= min_quantity ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items below min: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(&i.ID, &i.Name, &i.SKU, &i.CategoryID,
		&i.Quantity, &i.MinQuantity, &i.Price, &i.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

func scanItems(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.Name, &i.SKU, &i.CategoryID,
			&i.Quantity, &i.MinQuantity, &i.Price, &i.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
