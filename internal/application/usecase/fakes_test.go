package usecase_test

import (
	"context"
	"time"

	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// Fakes mínimos en memoria para los casos de uso. Cada campo de error
// permite inyectar fallos puntuales.

type fakeAnalyticsRepo struct {
	totalProducts int
	lowStockCount int
	lowStockRows  []*entity.Product
	totals        []repository.CurrencyValue
	recentCount   int
	err           error
}

func (r *fakeAnalyticsRepo) CountProducts(context.Context) (int, error) {
	return r.totalProducts, r.err
}

func (r *fakeAnalyticsRepo) CountLowStock(context.Context) (int, error) {
	return r.lowStockCount, r.err
}

func (r *fakeAnalyticsRepo) ListLowStock(context.Context, int) ([]*entity.Product, error) {
	return r.lowStockRows, r.err
}

func (r *fakeAnalyticsRepo) InventoryValueByCurrency(context.Context) ([]repository.CurrencyValue, error) {
	return r.totals, r.err
}

func (r *fakeAnalyticsRepo) CountTransactionsSince(context.Context, time.Time) (int, error) {
	return r.recentCount, r.err
}

type fakeEmployeeRepo struct {
	employees map[string]entity.Employee
}

func newFakeEmployeeRepo(employees ...entity.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]entity.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	if e, ok := r.employees[id]; ok {
		cp := e
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) List(context.Context) ([]entity.Employee, error) {
	out := make([]entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

type fakeAssignmentRepo struct {
	countByEmployee map[string]int
}

func (r *fakeAssignmentRepo) Create(context.Context, *entity.ProductAssignment) error { return nil }

func (r *fakeAssignmentRepo) GetByID(context.Context, string) (*entity.ProductAssignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) GetForUpdate(context.Context, string) (*entity.ProductAssignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) Delete(context.Context, string) error { return nil }

func (r *fakeAssignmentRepo) ListDetails(context.Context) ([]repository.AssignmentDetail, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) CountByEmployee(_ context.Context, employeeID string) (int, error) {
	return r.countByEmployee[employeeID], nil
}

type fakeStockRequestRepo struct {
	requests        map[string]entity.StockRequest
	views           []listquery.RequestView
	countByEmployee map[string]int
}

func newFakeStockRequestRepo() *fakeStockRequestRepo {
	return &fakeStockRequestRepo{
		requests:        make(map[string]entity.StockRequest),
		countByEmployee: make(map[string]int),
	}
}

func (r *fakeStockRequestRepo) Create(_ context.Context, req *entity.StockRequest) error {
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeStockRequestRepo) GetByID(_ context.Context, id string) (*entity.StockRequest, error) {
	if req, ok := r.requests[id]; ok {
		cp := req
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStockRequestRepo) Update(_ context.Context, req *entity.StockRequest) error {
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeStockRequestRepo) Delete(_ context.Context, id string) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeStockRequestRepo) ListViews(context.Context) ([]listquery.RequestView, error) {
	return r.views, nil
}

func (r *fakeStockRequestRepo) CountByEmployee(_ context.Context, employeeID string) (int, error) {
	return r.countByEmployee[employeeID], nil
}
