package usecase

import (
	"context"

	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// transactionFetchLimit tope de filas traídas para el listado en memoria.
const transactionFetchLimit = 1000

// TransactionUseCase lectura del ledger. La escritura es exclusiva del motor
// de movimientos (ledger.MovementUseCase).
type TransactionUseCase struct {
	txRepo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo}
}

// TransactionListParams filtros y ordenamiento para el listado del ledger.
type TransactionListParams struct {
	Filters listquery.TransactionFilters
	SortBy  listquery.TransactionSortKey
	Dir     listquery.Direction
}

// List deriva la vista filtrada/ordenada de los movimientos más recientes.
func (uc *TransactionUseCase) List(ctx context.Context, params TransactionListParams) (*dto.TransactionListResponse, error) {
	if params.SortBy == "" {
		params.SortBy = listquery.TransactionSortCreatedAt
	}
	if params.Dir == "" {
		params.Dir = listquery.Desc
	}
	if params.Filters.Type != "" && !entity.ValidMovementType(params.Filters.Type) {
		return nil, domain.ErrInvalidInput
	}

	transactions, err := uc.txRepo.ListAll(ctx, transactionFetchLimit)
	if err != nil {
		return nil, err
	}
	filtered := listquery.FilterTransactions(transactions, params.Filters)
	sorted, err := listquery.SortTransactions(filtered, params.SortBy, params.Dir)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionResponse, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, dto.TransactionResponse{
			ID:        t.ID,
			ProductID: t.ProductID,
			Type:      t.Type,
			Quantity:  t.Quantity,
			Reason:    t.Reason,
			Notes:     t.Notes,
			CreatedAt: t.CreatedAt,
			CreatedBy: t.CreatedBy,
		})
	}
	return &dto.TransactionListResponse{Transactions: out, Total: len(out)}, nil
}

// ListByProduct devuelve el historial completo de un producto, más antiguo primero.
func (uc *TransactionUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.TransactionResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	transactions, err := uc.txRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, dto.TransactionResponse{
			ID:        t.ID,
			ProductID: t.ProductID,
			Type:      t.Type,
			Quantity:  t.Quantity,
			Reason:    t.Reason,
			Notes:     t.Notes,
			CreatedAt: t.CreatedAt,
			CreatedBy: t.CreatedBy,
		})
	}
	return out, nil
}
