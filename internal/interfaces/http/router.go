package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/catalog"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterProduct *catalog.RegisterProductUseCase
	LowStockAlerts  *catalog.LowStockAlertsUseCase
	ProductUC       *usecase.ProductUseCase
	CompanyUC       *usecase.CompanyUseCase
	SupplierUC      *usecase.SupplierUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.RegisterProduct, deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Companies (sembradas en bootstrap; descubrimiento de ids) y alertas
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	alertHandler := NewAlertHandler(deps.LowStockAlerts)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id/warehouses", companyHandler.ListWarehouses)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
}
