package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto con su inventario inicial.
// Price se recibe crudo para aceptar tanto 9.99 como "9.99"; el parseo y la
// validación viven en el caso de uso, no en el binding.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Price             json.RawMessage `json:"price"`
	WarehouseID       string          `json:"warehouse_id"`
	InitialQuantity   *int            `json:"initial_quantity,omitempty"`
	LowStockThreshold *int            `json:"low_stock_threshold,omitempty"`
	SupplierIDs       []string        `json:"supplier_ids,omitempty"`
}

// RawPrice devuelve la representación textual del precio, sin comillas si vino
// como string JSON; vacío si el campo está ausente o es null.
func (r CreateProductRequest) RawPrice() string {
	s := strings.TrimSpace(string(r.Price))
	s = strings.Trim(s, `"`)
	if s == "null" {
		return ""
	}
	return s
}

// CreateProductResponse salida del registro exitoso.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// SupplierDTO proveedor en respuestas.
type SupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// ProductResponse detalle de un producto con sus proveedores asociados.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	IsBundle  bool            `json:"is_bundle"`
	Suppliers []SupplierDTO   `json:"suppliers"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []SupplierDTO `json:"items"`
}
