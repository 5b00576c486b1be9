package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas válidas para UnitPrice. Los agregados nunca suman entre monedas distintas.
const (
	CurrencyUSD = "USD"
	CurrencyUYU = "UYU"
)

// Estados de stock derivados de Quantity vs MinQuantity.
const (
	StockStatusOut = "Agotado"
	StockStatusLow = "Stock Bajo"
	StockStatusOK  = "En Stock"
)

// Product representa un producto del inventario. Quantity es el contador
// denormalizado del ledger: siempre igual a la suma de entradas menos salidas
// en transactions, y nunca negativo. Solo el motor de movimientos lo modifica.
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string // código único de negocio
	Category     string // texto libre, se cruza contra Category.Name
	Quantity     int
	MinQuantity  int // umbral de reposición
	UnitPrice    decimal.Decimal
	UnitCurrency string // USD | UYU
	Supplier     string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    string
}

// StockStatus clasifica el nivel de stock de un producto.
func (p *Product) StockStatus() string {
	return StockStatusFor(p.Quantity, p.MinQuantity)
}

// StockStatusFor aplica la regla de clasificación: Agotado si no queda nada,
// Stock Bajo si está en o debajo del mínimo, En Stock en otro caso.
func StockStatusFor(quantity, minQuantity int) string {
	if quantity <= 0 {
		return StockStatusOut
	}
	if quantity <= minQuantity {
		return StockStatusLow
	}
	return StockStatusOK
}

// ValidCurrency indica si la moneda es una de las soportadas.
func ValidCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyUYU
}
