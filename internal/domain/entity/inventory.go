package entity

import "time"

// DefaultLowStockThreshold umbral por defecto cuando el registro no especifica uno.
const DefaultLowStockThreshold = 10

// Inventory representa el stock de un producto en una bodega.
// Invariante: el par (ProductID, WarehouseID) es único (constraint uix_product_warehouse).
type Inventory struct {
	ID                string
	ProductID         string
	WarehouseID       string
	Quantity          int // no negativo
	LowStockThreshold int // sin validación de signo, se acepta tal cual
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock está por debajo del umbral (estrictamente menor;
// cantidad igual al umbral NO alerta).
func (i *Inventory) IsLowStock() bool {
	return i.Quantity < i.LowStockThreshold
}
