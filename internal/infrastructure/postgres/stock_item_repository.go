package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Get obtiene el saldo de un producto en una ubicación, o nil si la
// fila no existe aún.
func (r *StockItemRepo) Get(productID, locationID string) (*entity.StockItem, error) {
	query := `
		SELECT id, product_id, location_id, on_hand, reserved, version, created_at, updated_at
		FROM stock_items WHERE product_id = $1 AND location_id = $2`
	rows, err := r.q.Query(context.Background(), query, productID, locationID)
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	item, err := scanStockItem(rows)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// EnsureAndLock crea la fila si falta y la bloquea (FOR UPDATE) hasta el
// fin de la transacción. El INSERT .. ON CONFLICT DO NOTHING es
// idempotente: ante un primer toque concurrente el constraint único
// decide y ambos callers terminan bloqueando la misma fila.
func (r *StockItemRepo) EnsureAndLock(productID, locationID string) (*entity.StockItem, error) {
	insert := `
		INSERT INTO stock_items (id, product_id, location_id, on_hand, reserved, version, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, 1, now(), now())
		ON CONFLICT (product_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), productID, locationID); err != nil {
		return nil, fmt.Errorf("ensure stock item: %w", err)
	}

	query := `
		SELECT id, product_id, location_id, on_hand, reserved, version, created_at, updated_at
		FROM stock_items WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID, locationID)
	if err != nil {
		return nil, fmt.Errorf("lock stock item: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("lock stock item: %w", err)
		}
		return nil, fmt.Errorf("lock stock item: fila ausente tras upsert %s/%s", productID, locationID)
	}
	return scanStockItem(rows)
}

// Save persiste el estado de una fila ya bloqueada en esta transacción.
func (r *StockItemRepo) Save(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET on_hand = $1, reserved = $2, version = $3, updated_at = now()
		WHERE product_id = $4 AND location_id = $5`
	_, err := r.q.Exec(context.Background(), query,
		item.OnHand, item.Reserved, item.Version, item.ProductID, item.LocationID,
	)
	if err != nil {
		return fmt.Errorf("save stock item: %w", err)
	}
	return nil
}

// List devuelve los saldos; productID/locationID vacíos = sin filtro.
func (r *StockItemRepo) List(productID, locationID string) ([]*entity.StockItem, error) {
	query := `
		SELECT id, product_id, location_id, on_hand, reserved, version, created_at, updated_at
		FROM stock_items WHERE 1=1`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += " ORDER BY product_id, location_id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ListDetailed como List pero con SKU y códigos para reportes.
func (r *StockItemRepo) ListDetailed(productID, locationID string) ([]*repository.StockItemDetail, error) {
	query := `
		SELECT s.id, s.product_id, s.location_id, s.on_hand, s.reserved, s.version,
		       s.created_at, s.updated_at,
		       p.sku, p.name, l.code, l.name
		FROM stock_items s
		JOIN products p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND s.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND s.location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += " ORDER BY p.sku, l.code"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock detailed: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockItemDetail
	for rows.Next() {
		var d repository.StockItemDetail
		if err := rows.Scan(
			&d.Item.ID, &d.Item.ProductID, &d.Item.LocationID,
			&d.Item.OnHand, &d.Item.Reserved, &d.Item.Version,
			&d.Item.CreatedAt, &d.Item.UpdatedAt,
			&d.SKU, &d.ProductName, &d.LocationCode, &d.LocationName,
		); err != nil {
			return nil, fmt.Errorf("scan stock detailed: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStockItem(row rowScanner) (*entity.StockItem, error) {
	var s entity.StockItem
	if err := row.Scan(
		&s.ID, &s.ProductID, &s.LocationID, &s.OnHand, &s.Reserved,
		&s.Version, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan stock item: %w", err)
	}
	return &s, nil
}
