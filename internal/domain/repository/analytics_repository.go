package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/southgenetics/inventario/internal/domain/entity"
)

// CurrencyValue valor total de inventario para una moneda.
type CurrencyValue struct {
	Currency string
	Value    decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
// Los conteos se resuelven en la base (COUNT) sin cargar filas completas.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
	ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error)
	// InventoryValueByCurrency suma quantity*unit_price agrupado por moneda.
	// Nunca mezcla monedas en un mismo total.
	InventoryValueByCurrency(ctx context.Context) ([]CurrencyValue, error)
	CountTransactionsSince(ctx context.Context, since time.Time) (int, error)
}
