package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
)

// StockRequestRepository define el puerto para StockRequest.
// ListViews trae el nombre del empleado junto a cada solicitud para que el
// motor de vistas pueda ordenar por empleado sin más consultas.
type StockRequestRepository interface {
	Create(ctx context.Context, r *entity.StockRequest) error
	GetByID(ctx context.Context, id string) (*entity.StockRequest, error)
	Update(ctx context.Context, r *entity.StockRequest) error
	Delete(ctx context.Context, id string) error
	ListViews(ctx context.Context) ([]listquery.RequestView, error)
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}
