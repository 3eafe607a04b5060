package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden nueva.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_orders (id, supplier_id, status, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, po.ID, po.SupplierID, po.Status, po.CreatedAt)
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID, o nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, status, created_at
		FROM purchase_orders WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene y bloquea la fila de la orden hasta el fin de la
// transacción. Serializa recepciones concurrentes sobre la misma orden.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, status, created_at
		FROM purchase_orders WHERE id = $1
		FOR UPDATE`
	return r.getOne(query, id)
}

func (r *PurchaseOrderRepo) getOne(query, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.SupplierID, &po.Status, &po.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

// UpdateStatus actualiza el estado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE purchase_orders SET status = $1 WHERE id = $2`
	_, err := r.q.Exec(context.Background(), query, status, id)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// List devuelve las órdenes más recientes primero.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, status, created_at
		FROM purchase_orders
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.SupplierID, &po.Status, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

// CreateLine persiste una línea de la orden.
func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_order_lines (id, purchase_order_id, product_id, qty_ordered, qty_received, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.PurchaseOrderID, line.ProductID,
		line.QtyOrdered, line.QtyReceived, line.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("create purchase order line: %w", err)
	}
	return nil
}

// GetLineByID obtiene una línea por ID, o nil si no existe.
func (r *PurchaseOrderRepo) GetLineByID(id string) (*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, purchase_order_id, product_id, qty_ordered, qty_received, unit_cost
		FROM purchase_order_lines WHERE id = $1`
	var l entity.PurchaseOrderLine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.PurchaseOrderID, &l.ProductID, &l.QtyOrdered, &l.QtyReceived, &l.UnitCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order line: %w", err)
	}
	return &l, nil
}

// UpdateLineReceived fija el acumulado recibido de una línea.
func (r *PurchaseOrderRepo) UpdateLineReceived(lineID string, qtyReceived decimal.Decimal) error {
	query := `UPDATE purchase_order_lines SET qty_received = $1 WHERE id = $2`
	_, err := r.q.Exec(context.Background(), query, qtyReceived, lineID)
	if err != nil {
		return fmt.Errorf("update line received: %w", err)
	}
	return nil
}

// ListLines devuelve las líneas de una orden.
func (r *PurchaseOrderRepo) ListLines(purchaseOrderID string) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, purchase_order_id, product_id, qty_ordered, qty_received, unit_cost
		FROM purchase_order_lines WHERE purchase_order_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(
			&l.ID, &l.PurchaseOrderID, &l.ProductID, &l.QtyOrdered, &l.QtyReceived, &l.UnitCost,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
