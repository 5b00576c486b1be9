package dto

import "github.com/shopspring/decimal"

// CurrencyTotal valor de inventario de una moneda, con la cifra formateada
// para mostrar. Los totales nunca se suman entre monedas.
type CurrencyTotal struct {
	Currency  string          `json:"currency"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// LowStockProductDTO producto en o debajo de su mínimo, para alertas.
type LowStockProductDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	StockStatus string `json:"stock_status"`
}

// DashboardSummaryDTO resumen del dashboard.
type DashboardSummaryDTO struct {
	TotalProducts      int                  `json:"total_products"`
	LowStockCount      int                  `json:"low_stock_count"`
	LowStockProducts   []LowStockProductDTO `json:"low_stock_products"`
	InventoryValue     []CurrencyTotal      `json:"inventory_value"`
	RecentTransactions int                  `json:"recent_transactions"` // últimos 7 días
}
