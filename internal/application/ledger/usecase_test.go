package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura fake: un estado en memoria compartido por los repos, y un
// TxRunner que toma una foto del estado antes de correr la función y lo
// restaura si esta falla. Emula el rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

var errForzado = errors.New("fallo inyectado")

type fakeStore struct {
	products     map[string]entity.Product
	transactions []entity.Transaction
	assignments  map[string]entity.ProductAssignment
	employees    map[string]entity.Employee

	failTransactionCreate bool
	failUpdateQuantity    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:    make(map[string]entity.Product),
		assignments: make(map[string]entity.ProductAssignment),
		employees:   make(map[string]entity.Employee),
	}
}

func (s *fakeStore) snapshot() fakeStore {
	cp := fakeStore{
		products:     make(map[string]entity.Product, len(s.products)),
		transactions: append([]entity.Transaction(nil), s.transactions...),
		assignments:  make(map[string]entity.ProductAssignment, len(s.assignments)),
		employees:    s.employees,
	}
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.assignments {
		cp.assignments[k] = v
	}
	return cp
}

func (s *fakeStore) restore(snap fakeStore) {
	s.products = snap.products
	s.transactions = snap.transactions
	s.assignments = snap.assignments
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	assignmentRepo repository.AssignmentRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeProductRepo{store: r.store},
		&fakeTransactionRepo{store: r.store},
		&fakeAssignmentRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored := r.store.products[p.ID]
	quantity := stored.Quantity
	cp := *p
	cp.Quantity = quantity
	r.store.products[p.ID] = cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, productID string, quantity int) error {
	if r.store.failUpdateQuantity {
		return errForzado
	}
	p := r.store.products[productID]
	p.Quantity = quantity
	r.store.products[productID] = p
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ListProductsParams) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeTransactionRepo struct{ store *fakeStore }

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	if r.store.failTransactionCreate {
		return errForzado
	}
	r.store.transactions = append(r.store.transactions, *tx)
	return nil
}

func (r *fakeTransactionRepo) ListAll(_ context.Context, _ int) ([]entity.Transaction, error) {
	return append([]entity.Transaction(nil), r.store.transactions...), nil
}

func (r *fakeTransactionRepo) ListByProduct(_ context.Context, productID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.store.transactions {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct{ store *fakeStore }

func (r *fakeAssignmentRepo) Create(_ context.Context, a *entity.ProductAssignment) error {
	r.store.assignments[a.ID] = *a
	return nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id string) (*entity.ProductAssignment, error) {
	if a, ok := r.store.assignments[id]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductAssignment, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id string) error {
	delete(r.store.assignments, id)
	return nil
}

func (r *fakeAssignmentRepo) ListDetails(_ context.Context) ([]repository.AssignmentDetail, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) CountByEmployee(_ context.Context, employeeID string) (int, error) {
	n := 0
	for _, a := range r.store.assignments {
		if a.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

type fakeEmployeeRepo struct{ store *fakeStore }

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.store.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	if e, ok := r.store.employees[id]; ok {
		cp := e
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.store.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]entity.Employee, error) { return nil, nil }

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.store.employees, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func setup(t *testing.T) (*fakeStore, *ledger.MovementUseCase) {
	t.Helper()
	store := newFakeStore()
	store.products["p1"] = entity.Product{
		ID:          "p1",
		Name:        "Micropipeta 100µl",
		SKU:         "LAB-001",
		Quantity:    10,
		MinQuantity: 5,
		CreatedAt:   time.Now(),
	}
	store.employees["e1"] = entity.Employee{ID: "e1", Name: "Ana", Surname: "García"}

	uc := ledger.NewMovementUseCase(&fakeTxRunner{store: store}, &fakeEmployeeRepo{store: store})
	return store, uc
}

func quantityOf(t *testing.T, store *fakeStore, productID string) int {
	t.Helper()
	p, ok := store.products[productID]
	require.True(t, ok, "el producto debe existir")
	return p.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaSumaYRegistra(t *testing.T) {
	store, uc := setup(t)

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  4,
		Reason:    "Compra a proveedor",
		ActorID:   "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, 14, quantityOf(t, store, "p1"))
	require.Len(t, store.transactions, 1, "el ledger debe tener exactamente un renglón")
	assert.Equal(t, entity.MovementTypeIn, store.transactions[0].Type)
	assert.Equal(t, 4, store.transactions[0].Quantity)
	assert.Equal(t, "u1", store.transactions[0].CreatedBy)
}

func TestRecordMovement_SalidaRestaYRegistra(t *testing.T) {
	store, uc := setup(t)

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  3,
		Reason:    "Uso en laboratorio",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, quantityOf(t, store, "p1"))
	require.Len(t, store.transactions, 1)
	assert.Equal(t, entity.MovementTypeOut, store.transactions[0].Type)
}

// Una salida de 15 sobre stock 10 no deja ningún efecto visible: ni renglón
// en el ledger ni cambio en el contador.
func TestRecordMovement_SalidaExcesivaNoDejaEfectos(t *testing.T) {
	store, uc := setup(t)

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  15,
		Reason:    "Uso en laboratorio",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, quantityOf(t, store, "p1"), "el contador no debe cambiar")
	assert.Empty(t, store.transactions, "el ledger no debe tener renglones")
}

// Agotar el stock exacto es válido: 10 - 10 = 0 (Agotado, pero nunca negativo).
func TestRecordMovement_SalidaExactaDejaCero(t *testing.T) {
	store, uc := setup(t)

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  10,
		Reason:    "Uso en laboratorio",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, quantityOf(t, store, "p1"))
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	_, uc := setup(t)

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeIn,
		Quantity:  1,
		Reason:    "ajuste",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_EntradasInvalidas(t *testing.T) {
	_, uc := setup(t)
	ctx := context.Background()

	err := uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad cero")

	err = uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: -3, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad negativa")

	err = uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: "transfer", Quantity: 1, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	err = uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "razón vacía")
}

// Si el segundo sub-paso falla (escribir el contador), el primero (el renglón
// del ledger) también se revierte: el movimiento es indivisible.
func TestRecordMovement_FalloDeSubPasoRevierteTodo(t *testing.T) {
	store, uc := setup(t)
	store.failUpdateQuantity = true

	err := uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  5,
		Reason:    "Compra",
	})
	assert.ErrorIs(t, err, errForzado)

	assert.Equal(t, 10, quantityOf(t, store, "p1"))
	assert.Empty(t, store.transactions, "el renglón del ledger debe revertirse con el contador")
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignProduct / UnassignProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignProduct_DescuentaYCreaAsignacion(t *testing.T) {
	store, uc := setup(t)

	err := uc.AssignProduct(context.Background(), "p1", "e1", 4, "u1")
	require.NoError(t, err)

	assert.Equal(t, 6, quantityOf(t, store, "p1"))
	require.Len(t, store.transactions, 1)
	assert.Equal(t, entity.MovementTypeOut, store.transactions[0].Type)
	assert.Equal(t, entity.ReasonAssignment, store.transactions[0].Reason)
	require.Len(t, store.assignments, 1)
	for _, a := range store.assignments {
		assert.Equal(t, "e1", a.EmployeeID)
		assert.Equal(t, 4, a.Quantity)
	}
}

func TestAssignProduct_StockInsuficienteNoCreaNada(t *testing.T) {
	store, uc := setup(t)

	err := uc.AssignProduct(context.Background(), "p1", "e1", 11, "u1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, quantityOf(t, store, "p1"))
	assert.Empty(t, store.transactions)
	assert.Empty(t, store.assignments)
}

func TestAssignProduct_EmpleadoInexistente(t *testing.T) {
	store, uc := setup(t)

	err := uc.AssignProduct(context.Background(), "p1", "no-existe", 1, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, quantityOf(t, store, "p1"))
}

// Si crear la fila de asignación falla, la salida del ledger se revierte:
// nunca queda stock descontado sin asignación que lo respalde.
func TestAssignProduct_FalloEnLedgerRevierteAsignacion(t *testing.T) {
	store, uc := setup(t)
	store.failTransactionCreate = true

	err := uc.AssignProduct(context.Background(), "p1", "e1", 2, "u1")
	assert.ErrorIs(t, err, errForzado)

	assert.Equal(t, 10, quantityOf(t, store, "p1"))
	assert.Empty(t, store.transactions)
	assert.Empty(t, store.assignments)
}

// Asignar y devolver deja el contador donde empezó, dos renglones en el
// ledger (out + in) y cero asignaciones.
func TestAssignUnassign_RoundTrip(t *testing.T) {
	store, uc := setup(t)
	ctx := context.Background()

	require.NoError(t, uc.AssignProduct(ctx, "p1", "e1", 4, "u1"))

	var assignmentID string
	for id := range store.assignments {
		assignmentID = id
	}
	require.NotEmpty(t, assignmentID)

	require.NoError(t, uc.UnassignProduct(ctx, assignmentID, "u1"))

	assert.Equal(t, 10, quantityOf(t, store, "p1"), "el stock vuelve al punto de partida")
	require.Len(t, store.transactions, 2, "el historial conserva la salida y la entrada")
	assert.Equal(t, entity.MovementTypeOut, store.transactions[0].Type)
	assert.Equal(t, entity.MovementTypeIn, store.transactions[1].Type)
	assert.Equal(t, entity.ReasonAssignmentReturn, store.transactions[1].Reason)
	assert.Empty(t, store.assignments, "la asignación desaparece")
}

// Devolver dos veces la misma asignación: la segunda no encuentra la fila y
// no repone stock de nuevo.
func TestUnassignProduct_DobleDevolucionNoDuplica(t *testing.T) {
	store, uc := setup(t)
	ctx := context.Background()

	require.NoError(t, uc.AssignProduct(ctx, "p1", "e1", 4, "u1"))
	var assignmentID string
	for id := range store.assignments {
		assignmentID = id
	}

	require.NoError(t, uc.UnassignProduct(ctx, assignmentID, "u1"))
	err := uc.UnassignProduct(ctx, assignmentID, "u1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, quantityOf(t, store, "p1"), "la devolución no debe aplicarse dos veces")
	assert.Len(t, store.transactions, 2)
}

func TestUnassignProduct_AsignacionInexistente(t *testing.T) {
	store, uc := setup(t)

	err := uc.UnassignProduct(context.Background(), "no-existe", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.transactions)
}

// El invariante central: después de cualquier secuencia de movimientos, el
// contador es igual a la suma de deltas del ledger desde el stock inicial.
func TestLedger_ContadorIgualASumaDeDeltas(t *testing.T) {
	store, uc := setup(t)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 7, Reason: "Compra"}))
	require.NoError(t, uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 5, Reason: "Uso"}))
	require.NoError(t, uc.AssignProduct(ctx, "p1", "e1", 3, "u1"))
	// Intento fallido en el medio: no debe aportar delta.
	_ = uc.RecordMovement(ctx, ledger.MovementInput{ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 100, Reason: "Uso"})

	sum := 10 // stock inicial
	for _, tx := range store.transactions {
		if tx.Type == entity.MovementTypeIn {
			sum += tx.Quantity
		} else {
			sum -= tx.Quantity
		}
	}
	assert.Equal(t, sum, quantityOf(t, store, "p1"))
}
