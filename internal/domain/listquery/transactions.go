package listquery

import (
	"sort"
	"strings"

	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
)

// TransactionSortKey claves de ordenamiento soportadas para el ledger.
type TransactionSortKey string

const (
	TransactionSortCreatedAt TransactionSortKey = "created_at"
	TransactionSortQuantity  TransactionSortKey = "quantity"
	TransactionSortType      TransactionSortKey = "type"
)

// TransactionFilters filtros para movimientos. Campo vacío = no aplicado.
type TransactionFilters struct {
	Type      string
	ProductID string
}

// FilterTransactions devuelve una nueva secuencia con los movimientos que
// cumplen todos los filtros activos. No muta la entrada.
func FilterTransactions(in []entity.Transaction, f TransactionFilters) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(in))
	for _, t := range in {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.ProductID != "" && t.ProductID != f.ProductID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTransactions devuelve una copia ordenada por la clave y dirección dadas,
// con desempate por ID ascendente.
func SortTransactions(in []entity.Transaction, key TransactionSortKey, dir Direction) ([]entity.Transaction, error) {
	if !ValidDirection(dir) {
		return nil, domain.ErrInvalidInput
	}

	var cmp func(a, b entity.Transaction) int
	switch key {
	case TransactionSortCreatedAt:
		cmp = func(a, b entity.Transaction) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case TransactionSortQuantity:
		cmp = func(a, b entity.Transaction) int {
			return a.Quantity - b.Quantity
		}
	case TransactionSortType:
		cmp = func(a, b entity.Transaction) int {
			return strings.Compare(a.Type, b.Type)
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	out := make([]entity.Transaction, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		c := orient(cmp(out[i], out[j]), dir)
		if c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
