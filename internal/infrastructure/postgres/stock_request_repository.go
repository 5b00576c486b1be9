package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/listquery"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

var _ repository.StockRequestRepository = (*StockRequestRepo)(nil)

const stockRequestColumns = `id, employee_id, product_name, product_id, quantity,
	priority, status, reason, notes, requested_at, updated_at`

// StockRequestRepo implementación de StockRequestRepository sobre PostgreSQL.
type StockRequestRepo struct {
	q Querier
}

// NewStockRequestRepository construye el adaptador de solicitudes. Pasar pool o tx (Querier).
func NewStockRequestRepository(q Querier) *StockRequestRepo {
	return &StockRequestRepo{q: q}
}

// Create persiste una nueva solicitud.
func (r *StockRequestRepo) Create(ctx context.Context, req *entity.StockRequest) error {
	query := `
		INSERT INTO stock_requests (id, employee_id, product_name, product_id, quantity,
			priority, status, reason, notes, requested_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.ProductName, req.ProductID, req.Quantity,
		req.Priority, req.Status, req.Reason, req.Notes, req.RequestedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *StockRequestRepo) GetByID(ctx context.Context, id string) (*entity.StockRequest, error) {
	query := `SELECT id, employee_id, product_name, COALESCE(product_id::text, ''), quantity,
		priority, status, reason, notes, requested_at, updated_at
		FROM stock_requests WHERE id = $1`
	var req entity.StockRequest
	err := r.q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.ProductName, &req.ProductID, &req.Quantity,
		&req.Priority, &req.Status, &req.Reason, &req.Notes, &req.RequestedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock request: %w", err)
	}
	return &req, nil
}

// Update actualiza una solicitud existente.
func (r *StockRequestRepo) Update(ctx context.Context, req *entity.StockRequest) error {
	query := `
		UPDATE stock_requests SET product_name = $2, product_id = NULLIF($3, ''), quantity = $4,
			priority = $5, status = $6, reason = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.ProductName, req.ProductID, req.Quantity,
		req.Priority, req.Status, req.Reason, req.Notes, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock request: %w", err)
	}
	return nil
}

// Delete elimina una solicitud por ID.
func (r *StockRequestRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock request: %w", err)
	}
	return nil
}

// ListViews trae todas las solicitudes con el nombre del empleado resuelto,
// listas para el motor de filtrado/ordenamiento en memoria.
func (r *StockRequestRepo) ListViews(ctx context.Context) ([]listquery.RequestView, error) {
	query := `
		SELECT r.id, r.employee_id, r.product_name, COALESCE(r.product_id::text, ''), r.quantity,
			r.priority, r.status, r.reason, r.notes, r.requested_at, r.updated_at,
			COALESCE(e.name || ' ' || e.surname, '')
		FROM stock_requests r
		LEFT JOIN employees e ON e.id = r.employee_id
		ORDER BY r.requested_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock requests: %w", err)
	}
	defer rows.Close()

	var list []listquery.RequestView
	for rows.Next() {
		var v listquery.RequestView
		if err := rows.Scan(&v.ID, &v.EmployeeID, &v.ProductName, &v.ProductID, &v.Quantity,
			&v.Priority, &v.Status, &v.Reason, &v.Notes, &v.RequestedAt, &v.UpdatedAt,
			&v.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan stock request: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// CountByEmployee cuenta solicitudes de un empleado.
func (r *StockRequestRepo) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_requests WHERE employee_id = $1`, employeeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock requests: %w", err)
	}
	return n, nil
}
