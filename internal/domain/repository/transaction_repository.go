package repository

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/entity"
)

// TransactionRepository define el puerto del ledger. El ledger es append-only:
// no expone Update ni Delete; las correcciones son movimientos compensatorios.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	ListAll(ctx context.Context, limit int) ([]entity.Transaction, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Transaction, error)
}
