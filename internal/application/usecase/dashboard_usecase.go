package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dashboardLowStockRows = 5                  // filas de alerta en el widget
	recentWindow          = 7 * 24 * time.Hour // ventana de "transacciones recientes"
)

// printer formatea cifras con separadores es-UY para el dashboard.
var printer = message.NewPrinter(language.Spanish)

// DashboardUseCase arma el resumen del dashboard: conteos resueltos en la base
// (sin cargar filas completas) y valor de inventario agrupado por moneda.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary ejecuta las consultas del dashboard en paralelo y consolida.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}
	type valueResult struct {
		totals []repository.CurrencyValue
		err    error
	}

	totalCh := make(chan countResult, 1)
	lowCountCh := make(chan countResult, 1)
	lowRowsCh := make(chan lowStockResult, 1)
	valueCh := make(chan valueResult, 1)
	recentCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowCountCh <- countResult{n, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.ListLowStock(ctx, dashboardLowStockRows)
		lowRowsCh <- lowStockResult{products, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.InventoryValueByCurrency(ctx)
		valueCh <- valueResult{totals, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountTransactionsSince(ctx, time.Now().Add(-recentWindow))
		recentCh <- countResult{n, err}
	}()

	total := <-totalCh
	lowCount := <-lowCountCh
	lowRows := <-lowRowsCh
	value := <-valueCh
	recent := <-recentCh

	for _, err := range []error{total.err, lowCount.err, lowRows.err, value.err, recent.err} {
		if err != nil {
			return nil, err
		}
	}

	lowStock := make([]dto.LowStockProductDTO, 0, len(lowRows.products))
	for _, p := range lowRows.products {
		lowStock = append(lowStock, dto.LowStockProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			SKU:         p.SKU,
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
			StockStatus: p.StockStatus(),
		})
	}

	totals := make([]dto.CurrencyTotal, 0, len(value.totals))
	for _, cv := range value.totals {
		totals = append(totals, dto.CurrencyTotal{
			Currency:  cv.Currency,
			Value:     cv.Value,
			Formatted: formatCurrency(cv.Currency, cv.Value),
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:      total.n,
		LowStockCount:      lowCount.n,
		LowStockProducts:   lowStock,
		InventoryValue:     totals,
		RecentTransactions: recent.n,
	}, nil
}

// formatCurrency formatea un total con el símbolo local: "$" para USD,
// "$U" para pesos uruguayos.
func formatCurrency(currency string, v decimal.Decimal) string {
	symbol := "$"
	if currency == entity.CurrencyUYU {
		symbol = "$U"
	}
	return printer.Sprintf("%s %v", symbol, number.Decimal(v.InexactFloat64(), number.MaxFractionDigits(2)))
}
