package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// StockRequestUseCase CRUD de solicitudes de reposición. Las transiciones de
// estado son libres (cualquier estado a cualquier otro); solo se valida que
// los valores de enum sean conocidos.
type StockRequestUseCase struct {
	requestRepo  repository.StockRequestRepository
	employeeRepo repository.EmployeeRepository
}

// NewStockRequestUseCase construye el caso de uso.
func NewStockRequestUseCase(requestRepo repository.StockRequestRepository, employeeRepo repository.EmployeeRepository) *StockRequestUseCase {
	return &StockRequestUseCase{requestRepo: requestRepo, employeeRepo: employeeRepo}
}

// Create valida y persiste una solicitud. Estado inicial: pendiente.
func (uc *StockRequestUseCase) Create(ctx context.Context, in dto.CreateStockRequestRequest) (*dto.StockRequestResponse, error) {
	if in.EmployeeID == "" || in.ProductName == "" || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedia
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, domain.ErrInvalidPriority
	}
	employee, err := uc.employeeRepo.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	request := &entity.StockRequest{
		ID:          uuid.New().String(),
		EmployeeID:  in.EmployeeID,
		ProductName: in.ProductName,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Priority:    in.Priority,
		Status:      entity.StatusPendiente,
		Reason:      in.Reason,
		Notes:       in.Notes,
		RequestedAt: now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return toStockRequestResponse(request, employee.FullName()), nil
}

// Update actualiza una solicitud, incluido su estado (sin máquina de estados).
func (uc *StockRequestUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequestRequest) (*dto.StockRequestResponse, error) {
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, domain.ErrInvalidPriority
	}
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	request.ProductName = in.ProductName
	request.ProductID = in.ProductID
	request.Quantity = in.Quantity
	request.Priority = in.Priority
	request.Status = in.Status
	request.Reason = in.Reason
	request.Notes = in.Notes
	request.UpdatedAt = time.Now()

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return toStockRequestResponse(request, ""), nil
}

// ListParams filtros y ordenamiento para el listado de solicitudes.
type ListParams struct {
	Filters listquery.RequestFilters
	SortBy  listquery.RequestSortKey
	Dir     listquery.Direction
}

// List trae todas las solicitudes y deriva la vista con el motor de consultas
// en memoria: filtros AND, orden con desempate determinista por ID.
func (uc *StockRequestUseCase) List(ctx context.Context, params ListParams) (*dto.StockRequestListResponse, error) {
	if params.SortBy == "" {
		params.SortBy = listquery.RequestSortRequestedAt
	}
	if params.Dir == "" {
		params.Dir = listquery.Desc
	}
	if params.Filters.Priority != "" && !entity.ValidPriority(params.Filters.Priority) {
		return nil, domain.ErrInvalidPriority
	}
	if params.Filters.Status != "" && !entity.ValidStatus(params.Filters.Status) {
		return nil, domain.ErrInvalidInput
	}

	views, err := uc.requestRepo.ListViews(ctx)
	if err != nil {
		return nil, err
	}
	filtered := listquery.FilterRequests(views, params.Filters)
	sorted, err := listquery.SortRequests(filtered, params.SortBy, params.Dir)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockRequestResponse, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, *toStockRequestResponse(&v.StockRequest, v.EmployeeName))
	}
	return &dto.StockRequestListResponse{Requests: out, Total: len(out)}, nil
}

// Delete elimina una solicitud por ID.
func (uc *StockRequestUseCase) Delete(ctx context.Context, id string) error {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	return uc.requestRepo.Delete(ctx, id)
}

func toStockRequestResponse(r *entity.StockRequest, employeeName string) *dto.StockRequestResponse {
	return &dto.StockRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		ProductName:  r.ProductName,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		Priority:     r.Priority,
		Status:       r.Status,
		Reason:       r.Reason,
		Notes:        r.Notes,
		RequestedAt:  r.RequestedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
