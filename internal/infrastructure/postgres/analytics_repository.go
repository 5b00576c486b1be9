package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
// Los conteos y sumas se resuelven en la base sin cargar filas completas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts cuenta todos los productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta productos con quantity <= min_quantity (incluye agotados).
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE quantity <= min_quantity`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// ListLowStock devuelve los productos más críticos, ordenados por cantidad ascendente.
func (r *AnalyticsRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE quantity <= min_quantity
		 ORDER BY quantity ASC, id ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// InventoryValueByCurrency suma quantity*unit_price agrupado por moneda.
// Cada moneda llega como un total independiente; nunca se mezclan.
func (r *AnalyticsRepo) InventoryValueByCurrency(ctx context.Context) ([]repository.CurrencyValue, error) {
	rows, err := r.q.Query(ctx,
		`SELECT unit_currency, COALESCE(SUM(quantity * unit_price), 0)
		 FROM products
		 GROUP BY unit_currency
		 ORDER BY unit_currency`)
	if err != nil {
		return nil, fmt.Errorf("inventory value by currency: %w", err)
	}
	defer rows.Close()

	var totals []repository.CurrencyValue
	for rows.Next() {
		var cv repository.CurrencyValue
		if err := rows.Scan(&cv.Currency, &cv.Value); err != nil {
			return nil, fmt.Errorf("scan currency value: %w", err)
		}
		totals = append(totals, cv)
	}
	return totals, rows.Err()
}

// CountTransactionsSince cuenta movimientos registrados desde una fecha dada.
func (r *AnalyticsRepo) CountTransactionsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count recent transactions: %w", err)
	}
	return n, nil
}
