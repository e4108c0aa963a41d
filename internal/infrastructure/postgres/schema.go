package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente del servicio. Los nombres de constraint importan:
// utils.go los usa para traducir violaciones a errores de dominio.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS warehouses (
	id          TEXT PRIMARY KEY,
	company_id  TEXT NOT NULL REFERENCES companies(id),
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	sku         TEXT NOT NULL,
	price       NUMERIC(10,2) NOT NULL,
	is_bundle   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT products_sku_key UNIQUE (sku)
);

CREATE TABLE IF NOT EXISTS suppliers (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	contact_email  TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS product_suppliers (
	product_id   TEXT NOT NULL REFERENCES products(id),
	supplier_id  TEXT NOT NULL REFERENCES suppliers(id),
	PRIMARY KEY (product_id, supplier_id)
);

CREATE TABLE IF NOT EXISTS inventory (
	id                   TEXT PRIMARY KEY,
	product_id           TEXT NOT NULL REFERENCES products(id),
	warehouse_id         TEXT NOT NULL REFERENCES warehouses(id),
	quantity             INT NOT NULL DEFAULT 0,
	low_stock_threshold  INT NOT NULL DEFAULT 10,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uix_product_warehouse UNIQUE (product_id, warehouse_id)
);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Seed siembra datos de demostración la primera vez (tabla companies vacía):
// dos empresas con tres bodegas y dos proveedores de ejemplo. Conveniencia de
// despliegue, no parte del contrato del core.
func Seed(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&count); err != nil {
		return false, fmt.Errorf("contar companies: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	company1 := uuid.New().String()
	company2 := uuid.New().String()
	for _, row := range []struct{ id, name string }{
		{company1, "Tech Supplies Pvt Ltd"},
		{company2, "Gadget World Ltd"},
	} {
		if _, err := tx.Exec(ctx,
			`INSERT INTO companies (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
			row.id, row.name, now,
		); err != nil {
			return false, fmt.Errorf("seed company: %w", err)
		}
	}

	for _, row := range []struct{ companyID, name string }{
		{company1, "Pune Warehouse"},
		{company1, "Mumbai Warehouse"},
		{company2, "Delhi Warehouse"},
	} {
		if _, err := tx.Exec(ctx,
			`INSERT INTO warehouses (id, company_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
			uuid.New().String(), row.companyID, row.name, now,
		); err != nil {
			return false, fmt.Errorf("seed warehouse: %w", err)
		}
	}

	for _, row := range []struct{ name, email string }{
		{"Acme Components", "sales@acme-components.example"},
		{"Global Parts Co", "contact@globalparts.example"},
	} {
		if _, err := tx.Exec(ctx,
			`INSERT INTO suppliers (id, name, contact_email, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
			uuid.New().String(), row.name, row.email, now,
		); err != nil {
			return false, fmt.Errorf("seed supplier: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
