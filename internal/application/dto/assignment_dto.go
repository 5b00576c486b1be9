package dto

import "time"

// CreateAssignmentRequest body para POST /api/assignments.
type CreateAssignmentRequest struct {
	ProductID  string `json:"product_id"`
	EmployeeID string `json:"employee_id"`
	Quantity   int    `json:"quantity"`
}

// AssignmentResponse asignación con nombres resueltos.
type AssignmentResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Quantity     int       `json:"quantity"`
	AssignedAt   time.Time `json:"assigned_at"`
}
