package entity

import "time"

// Prioridades de StockRequest, ordenadas de menor a mayor urgencia.
const (
	PriorityBaja    = "baja"
	PriorityMedia   = "media"
	PriorityAlta    = "alta"
	PriorityUrgente = "urgente"
)

// Estados de StockRequest. No hay máquina de estados: cualquier estado puede
// pasar a cualquier otro (ajuste manual permitido).
const (
	StatusPendiente  = "pendiente"
	StatusAprobada   = "aprobada"
	StatusRechazada  = "rechazada"
	StatusCompletada = "completada"
)

// StockRequest es un pedido de reposición hecho por un empleado. ProductName
// es texto libre; ProductID es opcional y puede vincular a un producto existente.
type StockRequest struct {
	ID          string
	EmployeeID  string
	ProductName string
	ProductID   string // opcional
	Quantity    int    // positivo
	Priority    string // baja | media | alta | urgente
	Status      string // pendiente | aprobada | rechazada | completada
	Reason      string
	Notes       string
	RequestedAt time.Time
	UpdatedAt   time.Time
}

// ValidPriority indica si la prioridad es una de las cuatro conocidas.
func ValidPriority(p string) bool {
	switch p {
	case PriorityBaja, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// ValidStatus indica si el estado es uno de los cuatro conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusAprobada, StatusRechazada, StatusCompletada:
		return true
	}
	return false
}
