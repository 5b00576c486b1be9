package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador de asignaciones. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una nueva asignación.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.ProductAssignment) error {
	query := `
		INSERT INTO product_assignments (id, product_id, employee_id, quantity, assigned_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, a.ID, a.ProductID, a.EmployeeID, a.Quantity, a.AssignedAt)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.ProductAssignment, error) {
	query := `SELECT id, product_id, employee_id, quantity, assigned_at FROM product_assignments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var a entity.ProductAssignment
	err := r.q.QueryRow(ctx, query, id).Scan(&a.ID, &a.ProductID, &a.EmployeeID, &a.Quantity, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// GetByID obtiene una asignación por ID.
func (r *AssignmentRepo) GetByID(ctx context.Context, id string) (*entity.ProductAssignment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la asignación y bloquea su fila. Una segunda
// desasignación concurrente ve nil tras el commit de la primera.
func (r *AssignmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductAssignment, error) {
	return r.get(ctx, id, true)
}

// Delete elimina una asignación por ID.
func (r *AssignmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// ListDetails lista asignaciones vigentes con nombres de producto y empleado resueltos.
func (r *AssignmentRepo) ListDetails(ctx context.Context) ([]repository.AssignmentDetail, error) {
	query := `
		SELECT a.id, a.product_id, p.name, a.employee_id, e.name || ' ' || e.surname, a.quantity, a.assigned_at
		FROM product_assignments a
		JOIN products p ON p.id = a.product_id
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.assigned_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var list []repository.AssignmentDetail
	for rows.Next() {
		var d repository.AssignmentDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.ProductName, &d.EmployeeID, &d.EmployeeName,
			&d.Quantity, &d.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CountByEmployee cuenta asignaciones vigentes de un empleado.
func (r *AssignmentRepo) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM product_assignments WHERE employee_id = $1`, employeeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return n, nil
}
