package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
)

func employeeSetup(assignments, requests int) (*fakeEmployeeRepo, *usecase.EmployeeUseCase) {
	employees := newFakeEmployeeRepo(entity.Employee{ID: "e1", Name: "Ana", Surname: "García"})
	uc := usecase.NewEmployeeUseCase(
		employees,
		&fakeAssignmentRepo{countByEmployee: map[string]int{"e1": assignments}},
		&fakeStockRequestRepo{countByEmployee: map[string]int{"e1": requests}},
	)
	return employees, uc
}

func TestEmployeeDelete_SinReferenciasElimina(t *testing.T) {
	employees, uc := employeeSetup(0, 0)

	err := uc.Delete(context.Background(), "e1")
	require.NoError(t, err)

	got, _ := employees.GetByID(context.Background(), "e1")
	assert.Nil(t, got, "el empleado debe desaparecer")
}

// Con asignaciones activas el borrado se rechaza: quedarían referencias
// colgantes en product_assignments.
func TestEmployeeDelete_ConAsignacionesRechaza(t *testing.T) {
	employees, uc := employeeSetup(2, 0)

	err := uc.Delete(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, _ := employees.GetByID(context.Background(), "e1")
	assert.NotNil(t, got, "el empleado debe seguir existiendo")
}

func TestEmployeeDelete_ConSolicitudesRechaza(t *testing.T) {
	_, uc := employeeSetup(0, 1)

	err := uc.Delete(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEmployeeDelete_Inexistente(t *testing.T) {
	_, uc := employeeSetup(0, 0)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeCreate_ValidaNombreYApellido(t *testing.T) {
	_, uc := employeeSetup(0, 0)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployeeRequest{Name: "", Surname: "García"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateEmployeeRequest{Name: "Ana", Surname: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(ctx, dto.CreateEmployeeRequest{Name: "Bruno", Surname: "Díaz"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Bruno", out.Name)
}
