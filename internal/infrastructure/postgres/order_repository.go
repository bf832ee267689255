package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas se guardan como JSONB: son instantáneas
// congeladas al crear el pedido, no relaciones vivas.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste el pedido con sus líneas serializadas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	query := `
		INSERT INTO purchase_orders (id, supplier, lines, total_value, status, created_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.Supplier, lines, order.TotalValue,
		order.Status, order.CreatedAt, order.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier, lines, total_value, status, created_at, received_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	var lines []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Supplier, &lines, &o.TotalValue, &o.Status, &o.CreatedAt, &o.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal order lines: %w", err)
	}
	return &o, nil
}

// List lista pedidos más recientes primero.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier, lines, total_value, status, created_at, received_at
		FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		var lines []byte
		if err := rows.Scan(&o.ID, &o.Supplier, &lines, &o.TotalValue,
			&o.Status, &o.CreatedAt, &o.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal order lines: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatusFrom aplica la transición de estado como UPDATE condicional y
// reporta si afectó alguna fila. Es el candado del ciclo de vida: dos receive
// concurrentes no pueden reclamar ambos el mismo pedido PENDING.
func (r *PurchaseOrderRepo) UpdateStatusFrom(id, from, to string, receivedAt *time.Time) (bool, error) {
	query := `
		UPDATE purchase_orders
		SET status = $3, received_at = COALESCE($4, received_at)
		WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query, id, from, to, receivedAt)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
