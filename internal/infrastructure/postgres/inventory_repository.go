package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un registro de inventario. Una violación de uix_product_warehouse
// se traduce a ErrConstraintViolation.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.ProductID, inventory.WarehouseID,
		inventory.Quantity, inventory.LowStockThreshold,
		inventory.CreatedAt, inventory.UpdatedAt,
	)
	if err != nil {
		if domainErr := translateConstraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductAndWarehouse obtiene el registro para el par (product_id, warehouse_id). nil si no existe.
func (r *InventoryRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var i entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&i.ID, &i.ProductID, &i.WarehouseID, &i.Quantity, &i.LowStockThreshold, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}

// ListBelowThreshold lista los registros de una bodega con quantity < low_stock_threshold,
// ordenados por id para un recorrido determinista.
func (r *InventoryRepo) ListBelowThreshold(warehouseID string) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at
		FROM inventory
		WHERE warehouse_id = $1 AND quantity < low_stock_threshold
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list low stock inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var i entity.Inventory
		if err := rows.Scan(&i.ID, &i.ProductID, &i.WarehouseID, &i.Quantity, &i.LowStockThreshold, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
