package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	// ListByCompany devuelve las bodegas de una empresa ordenadas por id
	// (orden determinista para el recorrido de alertas).
	ListByCompany(companyID string) ([]*entity.Warehouse, error)
}
