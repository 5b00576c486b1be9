package repository

import (
	"context"
	"time"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// AssignmentDetail asignación con los nombres de producto y empleado ya resueltos.
type AssignmentDetail struct {
	ID           string
	ProductID    string
	ProductName  string
	EmployeeID   string
	EmployeeName string
	Quantity     int
	AssignedAt   time.Time
}

// AssignmentRepository define el puerto para ProductAssignment.
type AssignmentRepository interface {
	Create(ctx context.Context, a *entity.ProductAssignment) error
	GetByID(ctx context.Context, id string) (*entity.ProductAssignment, error)
	// GetForUpdate bloquea la fila de la asignación: dos desasignaciones
	// concurrentes de la misma fila no pueden duplicar la devolución.
	GetForUpdate(ctx context.Context, id string) (*entity.ProductAssignment, error)
	Delete(ctx context.Context, id string) error
	ListDetails(ctx context.Context) ([]AssignmentDetail, error)
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}
