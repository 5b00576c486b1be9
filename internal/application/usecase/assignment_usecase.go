package usecase

import (
	"context"

	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// AssignmentUseCase lectura de asignaciones. El alta y la baja pasan por el
// motor de movimientos porque mueven stock.
type AssignmentUseCase struct {
	assignmentRepo repository.AssignmentRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(assignmentRepo repository.AssignmentRepository) *AssignmentUseCase {
	return &AssignmentUseCase{assignmentRepo: assignmentRepo}
}

// List lista las asignaciones vigentes con nombres de producto y empleado.
func (uc *AssignmentUseCase) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	details, err := uc.assignmentRepo.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.AssignmentResponse{
			ID:           d.ID,
			ProductID:    d.ProductID,
			ProductName:  d.ProductName,
			EmployeeID:   d.EmployeeID,
			EmployeeName: d.EmployeeName,
			Quantity:     d.Quantity,
			AssignedAt:   d.AssignedAt,
		})
	}
	return out, nil
}
