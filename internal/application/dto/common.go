package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CompanyDTO empresa en respuestas.
type CompanyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyListResponse lista de empresas.
type CompanyListResponse struct {
	Items []CompanyDTO `json:"items"`
}

// WarehouseDTO bodega en respuestas.
type WarehouseDTO struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseListResponse bodegas de una empresa.
type WarehouseListResponse struct {
	Items []WarehouseDTO `json:"items"`
}
