package catalog_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// errStore simula un fallo inesperado del store (lecturas).
var errStore = errors.New("fallo simulado del store")

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria: implementa los puertos de repositorio con la misma semántica
// de errores que los adaptadores de PostgreSQL (SKU duplicado, par único).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	warehouses  map[string]*entity.Warehouse
	suppliers   map[string]*entity.Supplier
	products    []*entity.Product
	inventories []*entity.Inventory
	links       map[string][]string // product_id -> supplier_ids
	failReads   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		warehouses: make(map[string]*entity.Warehouse),
		suppliers:  make(map[string]*entity.Supplier),
		links:      make(map[string][]string),
	}
}

func (s *fakeStore) addWarehouse(id, companyID, name string) {
	s.warehouses[id] = &entity.Warehouse{ID: id, CompanyID: companyID, Name: name}
}

func (s *fakeStore) addSupplier(id, name, email string) {
	s.suppliers[id] = &entity.Supplier{ID: id, Name: name, ContactEmail: email}
}

func (s *fakeStore) addProduct(id, name, sku string) {
	s.products = append(s.products, &entity.Product{ID: id, Name: name, SKU: sku, CreatedAt: time.Now(), UpdatedAt: time.Now()})
}

func (s *fakeStore) addInventory(id, productID, warehouseID string, qty, threshold int) {
	s.inventories = append(s.inventories, &entity.Inventory{
		ID: id, ProductID: productID, WarehouseID: warehouseID,
		Quantity: qty, LowStockThreshold: threshold,
	})
}

func (s *fakeStore) link(productID string, supplierIDs ...string) {
	s.links[productID] = append(s.links[productID], supplierIDs...)
}

type storeSnapshot struct {
	products    []*entity.Product
	inventories []*entity.Inventory
	links       map[string][]string
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		products:    append([]*entity.Product(nil), s.products...),
		inventories: append([]*entity.Inventory(nil), s.inventories...),
		links:       make(map[string][]string, len(s.links)),
	}
	for k, v := range s.links {
		snap.links[k] = append([]string(nil), v...)
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.products = snap.products
	s.inventories = snap.inventories
	s.links = snap.links
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios (facetas del store)
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct{ s *fakeStore }

func (r fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if r.s.failReads {
		return nil, errStore
	}
	return r.s.warehouses[id], nil
}

func (r fakeWarehouseRepo) ListByCompany(companyID string) ([]*entity.Warehouse, error) {
	if r.s.failReads {
		return nil, errStore
	}
	var list []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	r.s.products = append(r.s.products, product)
	return nil
}

func (r fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.s.failReads {
		return nil, errStore
	}
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	if r.s.failReads {
		return nil, errStore
	}
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r fakeProductRepo) AttachSuppliers(productID string, supplierIDs []string) error {
	r.s.links[productID] = append(r.s.links[productID], supplierIDs...)
	return nil
}

type fakeSupplierRepo struct{ s *fakeStore }

func (r fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	if r.s.failReads {
		return nil, errStore
	}
	var list []*entity.Supplier
	for _, sup := range r.s.suppliers {
		list = append(list, sup)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeSupplierRepo) ListByIDs(ids []string) ([]*entity.Supplier, error) {
	if r.s.failReads {
		return nil, errStore
	}
	var list []*entity.Supplier
	for _, id := range ids {
		if sup, ok := r.s.suppliers[id]; ok {
			list = append(list, sup)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeSupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	if r.s.failReads {
		return nil, errStore
	}
	var list []*entity.Supplier
	for _, id := range r.s.links[productID] {
		if sup, ok := r.s.suppliers[id]; ok {
			list = append(list, sup)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type fakeInventoryRepo struct{ s *fakeStore }

func (r fakeInventoryRepo) Create(inventory *entity.Inventory) error {
	for _, inv := range r.s.inventories {
		if inv.ProductID == inventory.ProductID && inv.WarehouseID == inventory.WarehouseID {
			return domain.ErrConstraintViolation
		}
	}
	r.s.inventories = append(r.s.inventories, inventory)
	return nil
}

func (r fakeInventoryRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error) {
	if r.s.failReads {
		return nil, errStore
	}
	for _, inv := range r.s.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r fakeInventoryRepo) ListBelowThreshold(warehouseID string) ([]*entity.Inventory, error) {
	if r.s.failReads {
		return nil, errStore
	}
	var list []*entity.Inventory
	for _, inv := range r.s.inventories {
		if inv.WarehouseID == warehouseID && inv.Quantity < inv.LowStockThreshold {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner en memoria: snapshot antes de fn y restore si falla (rollback),
// con un error de commit inyectable para simular carreras de constraint.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	s         *fakeStore
	commitErr error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(fakeProductRepo{r.s}, fakeInventoryRepo{r.s}, fakeSupplierRepo{r.s}, fakeWarehouseRepo{r.s})
	if err == nil {
		err = r.commitErr
	}
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
