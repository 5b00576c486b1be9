package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// SupplierRepository define el puerto para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	List(ctx context.Context) ([]entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}
