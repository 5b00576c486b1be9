package dto

import "time"

// RecordMovementRequest body para POST /api/transactions.
type RecordMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // in | out
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}

// TransactionResponse un renglón del ledger.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// TransactionListResponse listado filtrado/ordenado de movimientos.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
