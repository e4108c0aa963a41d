package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// CompanyUseCase consultas de lectura sobre empresas (las empresas se siembran
// en el bootstrap, el core no las crea).
type CompanyUseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, warehouseRepo repository.WarehouseRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, warehouseRepo: warehouseRepo}
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	companies, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyListResponse{Items: make([]dto.CompanyDTO, 0, len(companies))}
	for _, c := range companies {
		out.Items = append(out.Items, dto.CompanyDTO{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// ListWarehouses lista las bodegas de una empresa. Una empresa desconocida
// devuelve una lista vacía.
func (uc *CompanyUseCase) ListWarehouses(companyID string) (*dto.WarehouseListResponse, error) {
	warehouses, err := uc.warehouseRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseListResponse{Items: make([]dto.WarehouseDTO, 0, len(warehouses))}
	for _, w := range warehouses {
		out.Items = append(out.Items, dto.WarehouseDTO{ID: w.ID, CompanyID: w.CompanyID, Name: w.Name, CreatedAt: w.CreatedAt})
	}
	return out, nil
}
