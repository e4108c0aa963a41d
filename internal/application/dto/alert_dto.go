package dto

// LowStockAlertDTO una alerta por registro de inventario bajo umbral.
// Supplier es nil cuando el producto no tiene proveedores asociados.
type LowStockAlertDTO struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int          `json:"current_stock"`
	Threshold         int          `json:"threshold"`
	DaysUntilStockout int          `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse lista completa de alertas con su conteo.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
