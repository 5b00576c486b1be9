package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// ListProductsParams parámetros de listado de productos.
type ListProductsParams struct {
	Search   string // busca en name y sku
	Category string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product.
// Quantity solo se modifica vía UpdateQuantity dentro de la transacción del
// motor de movimientos; Update no la toca.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar el read-modify-write de Quantity.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	List(ctx context.Context, params ListProductsParams) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
