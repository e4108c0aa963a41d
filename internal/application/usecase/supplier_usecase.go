package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SupplierUseCase consultas de lectura sobre proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// List lista todos los proveedores (descubrimiento de ids para supplier_ids).
func (uc *SupplierUseCase) List() (*dto.SupplierListResponse, error) {
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{Items: make([]dto.SupplierDTO, 0, len(suppliers))}
	for _, s := range suppliers {
		out.Items = append(out.Items, dto.SupplierDTO{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail})
	}
	return out, nil
}
