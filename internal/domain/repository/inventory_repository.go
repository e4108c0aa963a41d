package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
type InventoryRepository interface {
	// Create persiste un registro de inventario. Devuelve ErrConstraintViolation si
	// ya existe uno para el par (product_id, warehouse_id).
	Create(inventory *entity.Inventory) error
	GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error)
	// ListBelowThreshold devuelve los registros de una bodega con quantity < low_stock_threshold
	// (estrictamente menor), ordenados por id.
	ListBelowThreshold(warehouseID string) ([]*entity.Inventory, error)
}
