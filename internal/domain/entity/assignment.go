package entity

import "time"

// ProductAssignment registra stock en poder de un empleado: el equivalente a
// un movimiento "out" pendiente de devolución. Crearla descuenta stock y deja
// un movimiento de salida; borrarla lo repone y deja un movimiento de entrada.
type ProductAssignment struct {
	ID         string
	ProductID  string
	EmployeeID string
	Quantity   int // siempre positivo
	AssignedAt time.Time
}
