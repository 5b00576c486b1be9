package dto

import "time"

// CreateStockRequestRequest body para POST /api/stock-requests.
type CreateStockRequestRequest struct {
	EmployeeID  string `json:"employee_id"`
	ProductName string `json:"product_name"`
	ProductID   string `json:"product_id,omitempty"`
	Quantity    int    `json:"quantity"`
	Priority    string `json:"priority"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateStockRequestRequest body para PUT /api/stock-requests/:id.
// Status es libre: cualquier estado puede pasar a cualquier otro.
type UpdateStockRequestRequest struct {
	ProductName string `json:"product_name"`
	ProductID   string `json:"product_id,omitempty"`
	Quantity    int    `json:"quantity"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes,omitempty"`
}

// StockRequestResponse solicitud con nombre de empleado resuelto.
type StockRequestResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	ProductName  string    `json:"product_name"`
	ProductID    string    `json:"product_id,omitempty"`
	Quantity     int       `json:"quantity"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockRequestListResponse listado filtrado/ordenado de solicitudes.
type StockRequestListResponse struct {
	Requests []StockRequestResponse `json:"requests"`
	Total    int                    `json:"total"`
}
