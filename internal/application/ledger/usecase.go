// Package ledger implementa el motor de consistencia de stock: cada
// movimiento queda reflejado exactamente una vez en el contador del producto
// y en el historial de transacciones, dentro de una sola transacción de BD.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// MovementUseCase registra movimientos de stock (entrada/salida), asignaciones
// a empleados y devoluciones. Toda mutación corre bajo TxRunner con bloqueo de
// fila (SELECT FOR UPDATE) sobre el producto: dos salidas concurrentes no
// pueden leer el mismo contador y pisarse (lost update).
type MovementUseCase struct {
	txRunner     TxRunner
	employeeRepo repository.EmployeeRepository
}

// NewMovementUseCase construye el motor de movimientos.
func NewMovementUseCase(txRunner TxRunner, employeeRepo repository.EmployeeRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, employeeRepo: employeeRepo}
}

// MovementInput entrada para registrar un movimiento manual.
type MovementInput struct {
	ProductID string
	Type      string // in | out
	Quantity  int    // positivo
	Reason    string
	Notes     string
	ActorID   string
}

// RecordMovement registra un movimiento: inserta el renglón del ledger y
// actualiza products.quantity en la misma transacción. Para salidas valida
// stock disponible bajo el lock; una salida que excede el stock falla con
// ErrInsufficientStock y no deja ningún efecto visible.
func (uc *MovementUseCase) RecordMovement(ctx context.Context, input MovementInput) error {
	if input.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if input.ProductID == "" || input.Reason == "" || !entity.ValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.AssignmentRepository,
	) error {
		_, err := applyMovement(ctx, productRepo, txRepo, input, now)
		return err
	})
}

// AssignProduct descuenta stock y crea la asignación como un solo evento:
// salida en el ledger + fila en product_assignments, misma transacción.
func (uc *MovementUseCase) AssignProduct(ctx context.Context, productID, employeeID string, quantity int, actorID string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if productID == "" || employeeID == "" {
		return domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		assignmentRepo repository.AssignmentRepository,
	) error {
		mov := MovementInput{
			ProductID: productID,
			Type:      entity.MovementTypeOut,
			Quantity:  quantity,
			Reason:    entity.ReasonAssignment,
			Notes:     "Asignado a " + employee.FullName(),
			ActorID:   actorID,
		}
		if _, err := applyMovement(ctx, productRepo, txRepo, mov, now); err != nil {
			return err
		}
		return assignmentRepo.Create(ctx, &entity.ProductAssignment{
			ID:         uuid.New().String(),
			ProductID:  productID,
			EmployeeID: employeeID,
			Quantity:   quantity,
			AssignedAt: now,
		})
	})
}

// UnassignProduct repone el stock de una asignación y la elimina como un solo
// evento: entrada en el ledger + DELETE de la asignación, misma transacción.
// La fila de la asignación se bloquea primero: si otra sesión la desasignó,
// esta llamada falla con ErrNotFound sin tocar el ledger.
func (uc *MovementUseCase) UnassignProduct(ctx context.Context, assignmentID, actorID string) error {
	if assignmentID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		assignmentRepo repository.AssignmentRepository,
	) error {
		assignment, err := assignmentRepo.GetForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.ErrNotFound
		}
		mov := MovementInput{
			ProductID: assignment.ProductID,
			Type:      entity.MovementTypeIn,
			Quantity:  assignment.Quantity,
			Reason:    entity.ReasonAssignmentReturn,
			Notes:     "Producto desasignado de empleado",
			ActorID:   actorID,
		}
		if _, err := applyMovement(ctx, productRepo, txRepo, mov, now); err != nil {
			return err
		}
		return assignmentRepo.Delete(ctx, assignment.ID)
	})
}

// applyMovement ejecuta los dos sub-pasos de un movimiento bajo el lock de la
// fila del producto: inserta la transacción y escribe el nuevo contador.
// Devuelve la cantidad resultante.
func applyMovement(
	ctx context.Context,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	input MovementInput,
	now time.Time,
) (int, error) {
	product, err := productRepo.GetForUpdate(ctx, input.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}

	var newQuantity int
	switch input.Type {
	case entity.MovementTypeIn:
		newQuantity = product.Quantity + input.Quantity
	case entity.MovementTypeOut:
		if input.Quantity > product.Quantity {
			return 0, domain.ErrInsufficientStock
		}
		newQuantity = product.Quantity - input.Quantity
	default:
		return 0, domain.ErrInvalidInput
	}

	tx := &entity.Transaction{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		Notes:     input.Notes,
		CreatedAt: now,
		CreatedBy: input.ActorID,
	}
	if err := txRepo.Create(ctx, tx); err != nil {
		return 0, err
	}
	if err := productRepo.UpdateQuantity(ctx, input.ProductID, newQuantity); err != nil {
		return 0, err
	}
	return newQuantity, nil
}
