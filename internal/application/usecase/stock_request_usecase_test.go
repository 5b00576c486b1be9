package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
)

func stockRequestSetup() (*fakeStockRequestRepo, *usecase.StockRequestUseCase) {
	requests := newFakeStockRequestRepo()
	employees := newFakeEmployeeRepo(entity.Employee{ID: "e1", Name: "Ana", Surname: "García"})
	return requests, usecase.NewStockRequestUseCase(requests, employees)
}

func validCreate() dto.CreateStockRequestRequest {
	return dto.CreateStockRequestRequest{
		EmployeeID:  "e1",
		ProductName: "Guantes de nitrilo",
		Quantity:    10,
		Priority:    entity.PriorityAlta,
		Reason:      "se agotaron en el laboratorio",
	}
}

func TestStockRequestCreate_NaceEnPendiente(t *testing.T) {
	_, uc := stockRequestSetup()

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendiente, out.Status)
	assert.Equal(t, "Ana García", out.EmployeeName)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.RequestedAt.IsZero())
}

func TestStockRequestCreate_PrioridadPorDefectoEsMedia(t *testing.T) {
	_, uc := stockRequestSetup()
	in := validCreate()
	in.Priority = ""

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedia, out.Priority)
}

func TestStockRequestCreate_Validaciones(t *testing.T) {
	_, uc := stockRequestSetup()
	ctx := context.Background()

	in := validCreate()
	in.Priority = "critica"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidPriority, "prioridad desconocida")

	in = validCreate()
	in.Quantity = 0
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad cero")

	in = validCreate()
	in.ProductName = ""
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto vacío")

	in = validCreate()
	in.EmployeeID = "no-existe"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "empleado inexistente")
}

// Las transiciones de estado son libres: una solicitud completada puede
// volver a pendiente sin restricción.
func TestStockRequestUpdate_TransicionLibreDeEstado(t *testing.T) {
	requests, uc := stockRequestSetup()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	update := dto.UpdateStockRequestRequest{
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Priority:    created.Priority,
		Status:      entity.StatusCompletada,
		Reason:      created.Reason,
	}
	_, err = uc.Update(ctx, created.ID, update)
	require.NoError(t, err)

	update.Status = entity.StatusPendiente
	out, err := uc.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, out.Status)

	stored, _ := requests.GetByID(ctx, created.ID)
	assert.Equal(t, entity.StatusPendiente, stored.Status)
}

func TestStockRequestUpdate_EstadoDesconocidoRechazado(t *testing.T) {
	_, uc := stockRequestSetup()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, dto.UpdateStockRequestRequest{
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Priority:    created.Priority,
		Status:      "archivada",
		Reason:      created.Reason,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockRequestList_FiltraYOrdenaPorPrioridad(t *testing.T) {
	requests, uc := stockRequestSetup()
	now := time.Now()
	requests.views = []listquery.RequestView{
		{StockRequest: entity.StockRequest{ID: "r1", EmployeeID: "e1", Priority: entity.PriorityBaja, Status: entity.StatusPendiente, RequestedAt: now}, EmployeeName: "Ana García"},
		{StockRequest: entity.StockRequest{ID: "r2", EmployeeID: "e1", Priority: entity.PriorityUrgente, Status: entity.StatusPendiente, RequestedAt: now}, EmployeeName: "Ana García"},
		{StockRequest: entity.StockRequest{ID: "r3", EmployeeID: "e2", Priority: entity.PriorityAlta, Status: entity.StatusAprobada, RequestedAt: now}, EmployeeName: "Bruno Díaz"},
	}

	out, err := uc.List(context.Background(), usecase.ListParams{
		Filters: listquery.RequestFilters{Status: entity.StatusPendiente},
		SortBy:  listquery.RequestSortPriority,
		Dir:     listquery.Desc,
	})
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, "r2", out.Requests[0].ID, "urgente primero")
	assert.Equal(t, "r1", out.Requests[1].ID)
}

func TestStockRequestList_FiltroInvalidoRechazado(t *testing.T) {
	_, uc := stockRequestSetup()
	ctx := context.Background()

	_, err := uc.List(ctx, usecase.ListParams{
		Filters: listquery.RequestFilters{Priority: "critica"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = uc.List(ctx, usecase.ListParams{
		Filters: listquery.RequestFilters{Status: "archivada"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockRequestDelete_Inexistente(t *testing.T) {
	_, uc := stockRequestSetup()

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
