package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// ProductUseCase CRUD de productos. La cantidad no se edita por acá: el alta
// con stock inicial registra un movimiento "in" para que el ledger explique
// el contador desde el día cero; después solo el motor de movimientos la toca.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	txRunner    ledger.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, txRunner ledger.TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, txRunner: txRunner}
}

// Create valida y persiste un producto. Si trae stock inicial, el producto y
// su movimiento "Stock inicial" se insertan en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinQuantity < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCurrency == "" {
		in.UnitCurrency = entity.CurrencyUSD
	}
	if !entity.ValidCurrency(in.UnitCurrency) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		SKU:          in.SKU,
		Category:     in.Category,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		UnitPrice:    in.UnitPrice,
		UnitCurrency: in.UnitCurrency,
		Supplier:     in.Supplier,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    actorID,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.AssignmentRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if product.Quantity == 0 {
			return nil
		}
		return txRepo.Create(ctx, &entity.Transaction{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeIn,
			Quantity:  product.Quantity,
			Reason:    "Stock inicial",
			CreatedAt: now,
			CreatedBy: actorID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables. Quantity queda fuera a propósito.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCurrency != "" && !entity.ValidCurrency(in.UnitCurrency) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Category = in.Category
	product.MinQuantity = in.MinQuantity
	product.UnitPrice = in.UnitPrice
	if in.UnitCurrency != "" {
		product.UnitCurrency = in.UnitCurrency
	}
	product.Supplier = in.Supplier
	product.Location = in.Location
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda y filtro de categoría.
func (uc *ProductUseCase) List(ctx context.Context, params repository.ListProductsParams) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: out, Limit: params.Limit, Offset: params.Offset}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		Category:     p.Category,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		UnitPrice:    p.UnitPrice,
		UnitCurrency: p.UnitCurrency,
		Supplier:     p.Supplier,
		Location:     p.Location,
		StockStatus:  p.StockStatus(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
