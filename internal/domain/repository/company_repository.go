package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Solo lectura: el core no crea empresas.
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
}
