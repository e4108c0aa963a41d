package entity

import "time"

// Supplier representa un proveedor asociable a cero o más productos (N a N).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string // opcional, puede ser vacío
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
