package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCurrency string          `json:"unit_currency"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// No incluye quantity: el stock solo cambia vía movimientos del ledger.
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	MinQuantity  int             `json:"min_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCurrency string          `json:"unit_currency"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
}

// ProductResponse representación de Product en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitCurrency string          `json:"unit_currency"`
	Supplier     string          `json:"supplier,omitempty"`
	Location     string          `json:"location,omitempty"`
	StockStatus  string          `json:"stock_status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
