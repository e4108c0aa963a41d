package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List lista todos los proveedores ordenados por id.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, COALESCE(contact_email, ''), created_at, updated_at
		FROM suppliers ORDER BY id`
	return r.queryList(query)
}

// ListByIDs devuelve solo los proveedores existentes entre los ids dados.
// Los ids desconocidos simplemente no aparecen en el resultado.
func (r *SupplierRepo) ListByIDs(ids []string) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, COALESCE(contact_email, ''), created_at, updated_at
		FROM suppliers WHERE id = ANY($1) ORDER BY id`
	return r.queryList(query, ids)
}

// ListByProduct lista los proveedores asociados a un producto ordenados por id;
// el primero es el proveedor representativo en las alertas.
func (r *SupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, COALESCE(s.contact_email, ''), s.created_at, s.updated_at
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = $1
		ORDER BY s.id`
	return r.queryList(query, productID)
}

func (r *SupplierRepo) queryList(query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
