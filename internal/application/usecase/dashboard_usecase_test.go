package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// El valor de inventario llega agrupado por moneda y así se queda: un total
// por moneda, cada uno con su símbolo, nunca una suma cruzada.
func TestDashboard_ValorPorMonedaNuncaSeMezcla(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totalProducts: 12,
		totals: []repository.CurrencyValue{
			{Currency: entity.CurrencyUSD, Value: decimal.NewFromFloat(1500.50)},
			{Currency: entity.CurrencyUYU, Value: decimal.NewFromFloat(64000)},
		},
	}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, out.InventoryValue, 2, "un total por moneda")
	assert.Equal(t, entity.CurrencyUSD, out.InventoryValue[0].Currency)
	assert.True(t, out.InventoryValue[0].Value.Equal(decimal.NewFromFloat(1500.50)))
	assert.True(t, strings.HasPrefix(out.InventoryValue[0].Formatted, "$ "),
		"USD se formatea con símbolo $")

	assert.Equal(t, entity.CurrencyUYU, out.InventoryValue[1].Currency)
	assert.True(t, out.InventoryValue[1].Value.Equal(decimal.NewFromInt(64000)))
	assert.True(t, strings.HasPrefix(out.InventoryValue[1].Formatted, "$U "),
		"UYU se formatea con símbolo $U")
}

func TestDashboard_ConsolidaConteosYAlertas(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totalProducts: 40,
		lowStockCount: 3,
		lowStockRows: []*entity.Product{
			{ID: "p1", Name: "Tubos Falcon", SKU: "LAB-010", Quantity: 0, MinQuantity: 10},
			{ID: "p2", Name: "Puntas 200µl", SKU: "LAB-020", Quantity: 4, MinQuantity: 5},
		},
		recentCount: 17,
	}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, out.TotalProducts)
	assert.Equal(t, 3, out.LowStockCount)
	assert.Equal(t, 17, out.RecentTransactions)

	require.Len(t, out.LowStockProducts, 2)
	assert.Equal(t, entity.StockStatusOut, out.LowStockProducts[0].StockStatus,
		"cantidad cero se reporta como agotado")
	assert.Equal(t, entity.StockStatusLow, out.LowStockProducts[1].StockStatus)
}

func TestDashboard_ErrorDeConsultaSePropaga(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("conexión perdida")}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestDashboard_SinProductosDevuelveCeros(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeAnalyticsRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, out.TotalProducts)
	assert.Empty(t, out.LowStockProducts)
	assert.Empty(t, out.InventoryValue)
}
