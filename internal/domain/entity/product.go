package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto identificado por SKU (único global).
// El stock se maneja por bodega en Inventory; los proveedores vía product_suppliers.
type Product struct {
	ID        string
	Name      string
	SKU       string          // único global, no vacío
	Price     decimal.Decimal // NUMERIC(10,2), estrictamente positivo
	IsBundle  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
