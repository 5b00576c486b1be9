package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// La regla de estado de stock: Agotado si no queda nada, Stock Bajo en o
// debajo del mínimo, En Stock por encima.
func TestStockStatusFor_Clasificacion(t *testing.T) {
	cases := []struct {
		name        string
		quantity    int
		minQuantity int
		want        string
	}{
		{"cero es agotado", 0, 5, entity.StockStatusOut},
		{"cero con minimo cero sigue agotado", 0, 0, entity.StockStatusOut},
		{"igual al minimo es stock bajo", 5, 5, entity.StockStatusLow},
		{"debajo del minimo es stock bajo", 3, 5, entity.StockStatusLow},
		{"encima del minimo es en stock", 6, 5, entity.StockStatusOK},
		{"minimo cero con stock es en stock", 1, 0, entity.StockStatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StockStatusFor(tc.quantity, tc.minQuantity))
		})
	}
}

// El umbral 10 → out 3 → 7 "En Stock" → out 3 → 4 "Stock Bajo" con mínimo 5:
// la transición de estado cae exactamente al cruzar el mínimo.
func TestStockStatusFor_TransicionAlCruzarMinimo(t *testing.T) {
	const minQuantity = 5

	assert.Equal(t, entity.StockStatusOK, entity.StockStatusFor(10-3, minQuantity))
	assert.Equal(t, entity.StockStatusLow, entity.StockStatusFor(10-3-3, minQuantity))
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, entity.ValidCurrency(entity.CurrencyUSD))
	assert.True(t, entity.ValidCurrency(entity.CurrencyUYU))
	assert.False(t, entity.ValidCurrency("EUR"))
	assert.False(t, entity.ValidCurrency(""))
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeIn))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeOut))
	assert.False(t, entity.ValidMovementType("transfer"))
}
