package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// stockoutDivisor divisor fijo de la heurística de quiebre de stock (quantity / 5).
// No es un pronóstico de demanda real.
const stockoutDivisor = 5

// LowStockAlertsUseCase recorre las bodegas de una empresa y emite una alerta por
// cada registro de inventario por debajo de su umbral.
type LowStockAlertsUseCase struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
}

// NewLowStockAlertsUseCase construye el caso de uso.
func NewLowStockAlertsUseCase(
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *LowStockAlertsUseCase {
	return &LowStockAlertsUseCase{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
	}
}

// Execute calcula las alertas de stock bajo de una empresa. Una empresa desconocida
// o sin bodegas produce una lista vacía, no un error. Cualquier fallo de lectura
// aborta el cálculo completo; nunca se devuelve una lista parcial.
//
// Orden de salida: bodegas por id, inventarios por id dentro de cada bodega.
func (uc *LowStockAlertsUseCase) Execute(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	warehouses, err := uc.warehouseRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, warehouse := range warehouses {
		items, err := uc.inventoryRepo.ListBelowThreshold(warehouse.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				// La FK garantiza el producto; una fila huérfana es inconsistencia del store.
				return nil, fmt.Errorf("%w: inventario %s referencia un producto inexistente", domain.ErrInternal, item.ID)
			}

			suppliers, err := uc.supplierRepo.ListByProduct(item.ProductID)
			if err != nil {
				return nil, err
			}
			// Proveedor representativo: el primero por id ascendente; nil si no hay.
			var supplier *dto.SupplierDTO
			if len(suppliers) > 0 {
				supplier = &dto.SupplierDTO{
					ID:           suppliers[0].ID,
					Name:         suppliers[0].Name,
					ContactEmail: suppliers[0].ContactEmail,
				}
			}

			alerts = append(alerts, dto.LowStockAlertDTO{
				ProductID:         product.ID,
				ProductName:       product.Name,
				SKU:               product.SKU,
				WarehouseID:       warehouse.ID,
				WarehouseName:     warehouse.Name,
				CurrentStock:      item.Quantity,
				Threshold:         item.LowStockThreshold,
				DaysUntilStockout: daysUntilStockout(item.Quantity),
				Supplier:          supplier,
			})
		}
	}

	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// daysUntilStockout estima los días hasta quiebre: quantity/5 entero con piso 1
// (siempre >= 1, incluso con stock cero).
func daysUntilStockout(quantity int) int {
	days := quantity / stockoutDivisor
	if days < 1 {
		days = 1
	}
	return days
}
