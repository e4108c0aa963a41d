package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/catalog"
)

func buildAlertsUC(store *fakeStore) *catalog.LowStockAlertsUseCase {
	return catalog.NewLowStockAlertsUseCase(
		fakeWarehouseRepo{store}, fakeInventoryRepo{store},
		fakeProductRepo{store}, fakeSupplierRepo{store},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos borde de la empresa
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: una empresa desconocida o sin bodegas produce lista vacía, no error.
func TestLowStockAlerts_EmpresaSinBodegas(t *testing.T) {
	store := newFakeStore()
	uc := buildAlertsUC(store)

	out, err := uc.Execute(context.Background(), "co-inexistente")
	require.NoError(t, err)
	assert.NotNil(t, out.Alerts, "alerts debe serializarse como [] y no como null")
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 0, out.TotalAlerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Umbral estricto y estimación de quiebre
// ──────────────────────────────────────────────────────────────────────────────

// Caso 2: cantidad igual al umbral NO alerta; umbral-1 sí.
func TestLowStockAlerts_UmbralEstricto(t *testing.T) {
	store := newFakeStore()
	store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
	store.addProduct("p-1", "Widget", "W-1")
	store.addProduct("p-2", "Gadget", "G-1")
	store.addInventory("inv-1", "p-1", "wh-1", 10, 10) // igual al umbral
	store.addInventory("inv-2", "p-2", "wh-1", 9, 10)  // umbral - 1
	uc := buildAlertsUC(store)

	out, err := uc.Execute(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1, "solo la cantidad estrictamente menor al umbral alerta")
	assert.Equal(t, "G-1", out.Alerts[0].SKU)
	assert.Equal(t, 9, out.Alerts[0].CurrentStock)
	assert.Equal(t, 10, out.Alerts[0].Threshold)
	assert.Equal(t, 1, out.TotalAlerts)
}

// Caso 3: days_until_stockout = max(quantity/5, 1), siempre >= 1 incluso con stock cero.
func TestLowStockAlerts_EstimacionDeQuiebre(t *testing.T) {
	cases := []struct {
		qty, threshold, wantDays int
	}{
		{0, 10, 1},
		{3, 10, 1},
		{4, 10, 1},
		{5, 10, 1},
		{12, 20, 2},
		{49, 100, 9},
	}
	for _, tc := range cases {
		store := newFakeStore()
		store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
		store.addProduct("p-1", "Widget", "W-1")
		store.addInventory("inv-1", "p-1", "wh-1", tc.qty, tc.threshold)
		uc := buildAlertsUC(store)

		out, err := uc.Execute(context.Background(), "co-1")
		require.NoError(t, err)
		require.Len(t, out.Alerts, 1)
		assert.Equal(t, tc.wantDays, out.Alerts[0].DaysUntilStockout,
			"quantity=%d debe estimar %d días", tc.qty, tc.wantDays)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedor representativo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: el proveedor representativo es el primero por id ascendente; sin
// proveedores, el campo queda en nil.
func TestLowStockAlerts_ProveedorRepresentativo(t *testing.T) {
	store := newFakeStore()
	store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
	store.addSupplier("sup-2", "Global Parts Co", "contact@globalparts.example")
	store.addSupplier("sup-1", "Acme Components", "sales@acme-components.example")
	store.addProduct("p-1", "Widget", "W-1")
	store.addProduct("p-2", "Gadget", "G-1")
	store.addInventory("inv-1", "p-1", "wh-1", 2, 10)
	store.addInventory("inv-2", "p-2", "wh-1", 2, 10)
	store.link("p-1", "sup-2", "sup-1")
	uc := buildAlertsUC(store)

	out, err := uc.Execute(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 2)

	withSupplier := out.Alerts[0]
	require.NotNil(t, withSupplier.Supplier)
	assert.Equal(t, "sup-1", withSupplier.Supplier.ID, "gana el menor id de proveedor")
	assert.Equal(t, "Acme Components", withSupplier.Supplier.Name)
	assert.Equal(t, "sales@acme-components.example", withSupplier.Supplier.ContactEmail)

	assert.Nil(t, out.Alerts[1].Supplier, "producto sin proveedores → supplier nil")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden, idempotencia y fallos de lectura
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: el orden de salida es bodega por id y luego inventario por id.
func TestLowStockAlerts_OrdenDeterminista(t *testing.T) {
	store := newFakeStore()
	store.addWarehouse("wh-2", "co-1", "Mumbai Warehouse")
	store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
	store.addProduct("p-1", "Widget", "W-1")
	store.addProduct("p-2", "Gadget", "G-1")
	store.addProduct("p-3", "Gizmo", "Z-1")
	store.addInventory("inv-3", "p-3", "wh-2", 1, 10)
	store.addInventory("inv-2", "p-2", "wh-1", 1, 10)
	store.addInventory("inv-1", "p-1", "wh-1", 1, 10)
	uc := buildAlertsUC(store)

	out, err := uc.Execute(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 3)
	assert.Equal(t, "W-1", out.Alerts[0].SKU, "wh-1/inv-1 primero")
	assert.Equal(t, "G-1", out.Alerts[1].SKU, "wh-1/inv-2 segundo")
	assert.Equal(t, "Z-1", out.Alerts[2].SKU, "wh-2/inv-3 al final")
	assert.Equal(t, "Pune Warehouse", out.Alerts[0].WarehouseName)
	assert.Equal(t, "Mumbai Warehouse", out.Alerts[2].WarehouseName)
}

// Caso 6: dos lecturas sin escrituras intermedias devuelven resultados idénticos.
func TestLowStockAlerts_LecturaIdempotente(t *testing.T) {
	store := newFakeStore()
	store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
	store.addSupplier("sup-1", "Acme Components", "sales@acme-components.example")
	store.addProduct("p-1", "Widget", "W-1")
	store.addInventory("inv-1", "p-1", "wh-1", 3, 10)
	store.link("p-1", "sup-1")
	uc := buildAlertsUC(store)

	first, err := uc.Execute(context.Background(), "co-1")
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Caso 7: un fallo de lectura del store aborta el cálculo completo, sin lista parcial.
func TestLowStockAlerts_FalloDeLecturaAborta(t *testing.T) {
	store := newFakeStore()
	store.addWarehouse("wh-1", "co-1", "Pune Warehouse")
	store.addProduct("p-1", "Widget", "W-1")
	store.addInventory("inv-1", "p-1", "wh-1", 3, 10)
	store.failReads = true
	uc := buildAlertsUC(store)

	out, err := uc.Execute(context.Background(), "co-1")
	assert.Error(t, err)
	assert.Nil(t, out, "nunca se devuelve una lista parcial")
}
