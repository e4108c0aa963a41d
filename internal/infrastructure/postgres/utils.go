package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// Nombres de constraints del esquema (ver schema.go).
const (
	constraintProductSKU       = "products_sku_key"
	constraintProductWarehouse = "uix_product_warehouse"
)

// Códigos de error de PostgreSQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraintError traduce violaciones de constraint detectadas en el commit
// a errores de dominio. El constraint único de SKU tiene su propio error; cualquier
// otra violación única o de FK se reporta como ErrConstraintViolation.
// Devuelve nil si el error no es una violación de constraint.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == constraintProductSKU {
			return domain.ErrDuplicateSKU
		}
		return domain.ErrConstraintViolation
	case pgForeignKeyViolation:
		return domain.ErrConstraintViolation
	}
	return nil
}
