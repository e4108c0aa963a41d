package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ProductUseCase consultas de lectura sobre productos. El alta vive en catalog
// (es transaccional junto con el inventario inicial).
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// GetByID obtiene un producto con sus proveedores asociados. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	suppliers, err := uc.supplierRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		Price:     product.Price,
		IsBundle:  product.IsBundle,
		Suppliers: make([]dto.SupplierDTO, 0, len(suppliers)),
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
	for _, s := range suppliers {
		out.Suppliers = append(out.Suppliers, dto.SupplierDTO{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail})
	}
	return out, nil
}
