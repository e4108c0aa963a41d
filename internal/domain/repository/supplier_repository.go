package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
	// ListByIDs devuelve solo los proveedores existentes entre los ids dados
	// (los ids desconocidos se descartan en silencio).
	ListByIDs(ids []string) ([]*entity.Supplier, error)
	// ListByProduct devuelve los proveedores asociados a un producto ordenados por id;
	// el primero es el "proveedor representativo" de las alertas.
	ListByProduct(productID string) ([]*entity.Supplier, error)
}
