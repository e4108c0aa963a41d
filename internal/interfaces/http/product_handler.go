package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/catalog"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	registerUC *catalog.RegisterProductUseCase
	productUC  *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(registerUC *catalog.RegisterProductUseCase, productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{registerUC: registerUC, productUC: productUC}
}

// Create godoc
// @Summary      Registrar producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := catalog.RegisterProductInput{
		Name:              in.Name,
		SKU:               in.SKU,
		Price:             in.RawPrice(),
		WarehouseID:       in.WarehouseID,
		LowStockThreshold: in.LowStockThreshold,
		SupplierIDs:       in.SupplierIDs,
	}
	if in.InitialQuantity != nil {
		input.InitialQuantity = *in.InitialQuantity
	}

	productID, err := h.registerUC.Execute(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:   "producto creado exitosamente",
		ProductID: productID,
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID con sus proveedores
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.productUC.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}
