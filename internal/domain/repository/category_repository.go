package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// CategoryRepository define el puerto para Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, id string) error
}
