package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste un producto nuevo. Devuelve ErrDuplicateSKU si el SKU ya existe
	// (el constraint único de la base es la garantía real frente a carreras).
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// AttachSuppliers inserta las asociaciones producto-proveedor (tabla product_suppliers).
	AttachSuppliers(productID string, supplierIDs []string) error
}
