package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// UserRepository define el puerto para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
