package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// EmployeeRepository define el puerto para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context) ([]entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
