package ledger

import (
	"context"

	"github.com/southgenetics/inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que un movimiento de stock sea un
// evento indivisible: o se ven el renglón del ledger y el contador
// actualizados juntos, o no se ve nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		assignmentRepo repository.AssignmentRepository,
	) error) error
}
