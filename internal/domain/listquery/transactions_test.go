package listquery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
)

func tx(id, productID, typ string, quantity, minutesAfter int) entity.Transaction {
	return entity.Transaction{
		ID:        id,
		ProductID: productID,
		Type:      typ,
		Quantity:  quantity,
		Reason:    "ajuste",
		CreatedAt: baseTime.Add(time.Duration(minutesAfter) * time.Minute),
	}
}

func sampleTransactions() []entity.Transaction {
	return []entity.Transaction{
		tx("t1", "p1", entity.MovementTypeIn, 10, 0),
		tx("t2", "p2", entity.MovementTypeOut, 3, 10),
		tx("t3", "p1", entity.MovementTypeOut, 7, 20),
		tx("t4", "p2", entity.MovementTypeIn, 1, 30),
	}
}

func TestFilterTransactions_PorTipoYProducto(t *testing.T) {
	out := listquery.FilterTransactions(sampleTransactions(), listquery.TransactionFilters{
		Type:      entity.MovementTypeOut,
		ProductID: "p1",
	})

	require.Len(t, out, 1)
	assert.Equal(t, "t3", out[0].ID)
}

func TestFilterTransactions_FiltroVacioNoAplica(t *testing.T) {
	out := listquery.FilterTransactions(sampleTransactions(), listquery.TransactionFilters{})
	assert.Len(t, out, 4)
}

func TestSortTransactions_PorCantidadDescendente(t *testing.T) {
	out, err := listquery.SortTransactions(sampleTransactions(), listquery.TransactionSortQuantity, listquery.Desc)
	require.NoError(t, err)

	got := []int{out[0].Quantity, out[1].Quantity, out[2].Quantity, out[3].Quantity}
	assert.Equal(t, []int{10, 7, 3, 1}, got)
}

func TestSortTransactions_PorFechaAscendente(t *testing.T) {
	out, err := listquery.SortTransactions(sampleTransactions(), listquery.TransactionSortCreatedAt, listquery.Asc)
	require.NoError(t, err)

	assert.Equal(t, "t1", out[0].ID)
	assert.Equal(t, "t4", out[3].ID)
}

// Empate en la clave (mismo tipo) cae al ID ascendente.
func TestSortTransactions_PorTipoConDesempate(t *testing.T) {
	out, err := listquery.SortTransactions(sampleTransactions(), listquery.TransactionSortType, listquery.Asc)
	require.NoError(t, err)

	assert.Equal(t, []string{"t1", "t4", "t2", "t3"},
		[]string{out[0].ID, out[1].ID, out[2].ID, out[3].ID},
		"in antes que out, y dentro de cada tipo por ID")
}

func TestSortTransactions_NoMutaLaEntrada(t *testing.T) {
	in := sampleTransactions()
	_, err := listquery.SortTransactions(in, listquery.TransactionSortQuantity, listquery.Desc)
	require.NoError(t, err)

	assert.Equal(t, "t1", in[0].ID)
}

func TestSortTransactions_ClaveInvalida(t *testing.T) {
	_, err := listquery.SortTransactions(sampleTransactions(), "reason", listquery.Asc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
