package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Razones generadas por el motor para asignaciones a empleados.
const (
	ReasonAssignment       = "Asignación a empleado"
	ReasonAssignmentReturn = "Devolución de asignación"
)

// Transaction es una entrada del ledger de stock. El ledger es append-only:
// las correcciones se hacen insertando movimientos compensatorios, nunca
// editando el historial.
type Transaction struct {
	ID        string
	ProductID string
	Type      string // in | out
	Quantity  int    // siempre positivo; el signo lo da Type
	Reason    string
	Notes     string
	CreatedAt time.Time
	CreatedBy string
}

// ValidMovementType indica si el tipo de movimiento es in u out.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}
