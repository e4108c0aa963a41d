package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// RegisterProductUseCase crea un producto con su inventario inicial (y proveedores
// opcionales) en una sola transacción: o se persisten todas las filas o ninguna.
type RegisterProductUseCase struct {
	txRunner TxRunner
}

// NewRegisterProductUseCase construye el caso de uso.
func NewRegisterProductUseCase(txRunner TxRunner) *RegisterProductUseCase {
	return &RegisterProductUseCase{txRunner: txRunner}
}

// RegisterProductInput entrada ya decodificada por el transporte.
// Price llega como texto y se parsea aquí; LowStockThreshold nil usa el valor por defecto.
type RegisterProductInput struct {
	Name              string
	SKU               string
	Price             string
	WarehouseID       string
	InitialQuantity   int
	LowStockThreshold *int
	SupplierIDs       []string
}

// Execute valida la entrada (primer fallo gana, en el orden del contrato) y registra
// el producto dentro de una transacción. Devuelve el id del producto creado.
//
// Los chequeos de bodega y SKU se hacen dentro de la transacción, pero la garantía
// real frente a registros concurrentes son los constraints únicos de la base
// (products_sku_key y uix_product_warehouse), que se traducen a errores de dominio
// en el commit.
func (uc *RegisterProductUseCase) Execute(ctx context.Context, in RegisterProductInput) (string, error) {
	// 1. Campos requeridos
	if in.Name == "" {
		return "", domain.NewMissingFieldError("name")
	}
	if in.SKU == "" {
		return "", domain.NewMissingFieldError("sku")
	}
	if in.Price == "" {
		return "", domain.NewMissingFieldError("price")
	}
	if in.WarehouseID == "" {
		return "", domain.NewMissingFieldError("warehouse_id")
	}

	// 2. Precio decimal estrictamente positivo
	price, err := decimal.NewFromString(in.Price)
	if err != nil || !price.IsPositive() {
		return "", domain.ErrInvalidPrice
	}

	// 3. Cantidad inicial no negativa
	if in.InitialQuantity < 0 {
		return "", domain.ErrNegativeQuantity
	}

	// El umbral no se valida: uno negativo se acepta tal cual.
	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}

	now := time.Now()
	productID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		supplierRepo repository.SupplierRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		// 4. La bodega referenciada debe existir
		warehouse, err := warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}

		// 5. SKU libre
		existing, err := productRepo.GetBySKU(in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateSKU
		}

		product := &entity.Product{
			ID:        productID,
			Name:      in.Name,
			SKU:       in.SKU,
			Price:     price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}

		// Solo se asocian proveedores existentes; los ids desconocidos se descartan en silencio.
		if len(in.SupplierIDs) > 0 {
			suppliers, err := supplierRepo.ListByIDs(in.SupplierIDs)
			if err != nil {
				return err
			}
			if len(suppliers) > 0 {
				ids := make([]string, 0, len(suppliers))
				for _, s := range suppliers {
					ids = append(ids, s.ID)
				}
				if err := productRepo.AttachSuppliers(productID, ids); err != nil {
					return err
				}
			}
		}

		inventory := &entity.Inventory{
			ID:                uuid.New().String(),
			ProductID:         productID,
			WarehouseID:       in.WarehouseID,
			Quantity:          in.InitialQuantity,
			LowStockThreshold: threshold,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return inventoryRepo.Create(inventory)
	})
	if err != nil {
		return "", err
	}
	return productID, nil
}
