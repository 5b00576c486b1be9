package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados. El borrado está restringido mientras el
// empleado tenga asignaciones o solicitudes: evita referencias colgantes.
type EmployeeUseCase struct {
	employeeRepo   repository.EmployeeRepository
	assignmentRepo repository.AssignmentRepository
	requestRepo    repository.StockRequestRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	employeeRepo repository.EmployeeRepository,
	assignmentRepo repository.AssignmentRepository,
	requestRepo repository.StockRequestRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, assignmentRepo: assignmentRepo, requestRepo: requestRepo}
}

// Create valida y persiste un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Surname == "" {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Surname:   in.Surname,
		CreatedAt: time.Now(),
	}
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza nombre y apellido.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Surname == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.Name = in.Name
	employee.Surname = in.Surname
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *toEmployeeResponse(&employees[i]))
	}
	return out, nil
}

// Delete elimina un empleado. Falla con ErrConflict si todavía tiene
// asignaciones activas o solicitudes de stock que lo referencian.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	assignments, err := uc.assignmentRepo.CountByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if assignments > 0 {
		return domain.ErrConflict
	}
	requests, err := uc.requestRepo.CountByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if requests > 0 {
		return domain.ErrConflict
	}
	return uc.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{ID: e.ID, Name: e.Name, Surname: e.Surname, CreatedAt: e.CreatedAt}
}
