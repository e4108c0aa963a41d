package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidPrice        = errors.New("el precio debe ser un decimal positivo")
	ErrNegativeQuantity    = errors.New("la cantidad inicial no puede ser negativa")
	ErrWarehouseNotFound   = errors.New("bodega no encontrada")
	ErrDuplicateSKU        = errors.New("el SKU ya está registrado")
	ErrConstraintViolation = errors.New("violación de constraint de la base de datos")
	ErrInternal            = errors.New("error interno")
)

// MissingFieldError indica que falta un campo requerido en la entrada.
// Lleva el nombre del campo para que el mensaje al cliente sea específico.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("el campo %s es requerido", e.Field)
}

// NewMissingFieldError construye el error para el campo dado.
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}
