package listquery

import (
	"sort"
	"strings"

	"github.com/southgenetics/inventario/internal/domain"
	"github.com/southgenetics/inventario/internal/domain/entity"
)

// priorityRank tabla explícita de orden de prioridades.
// Valores desconocidos se rechazan, nunca se rankean en silencio.
var priorityRank = map[string]int{
	entity.PriorityUrgente: 4,
	entity.PriorityAlta:    3,
	entity.PriorityMedia:   2,
	entity.PriorityBaja:    1,
}

// PriorityRank devuelve el rango numérico de una prioridad (urgente=4 ... baja=1).
func PriorityRank(p string) (int, error) {
	rank, ok := priorityRank[p]
	if !ok {
		return 0, domain.ErrInvalidPriority
	}
	return rank, nil
}

// RequestSortKey claves de ordenamiento soportadas para solicitudes.
type RequestSortKey string

const (
	RequestSortRequestedAt RequestSortKey = "requested_at"
	RequestSortPriority    RequestSortKey = "priority"
	RequestSortEmployee    RequestSortKey = "employee"
)

// RequestFilters filtros para solicitudes de stock. Un campo vacío significa
// filtro no aplicado; los presentes se combinan con AND.
type RequestFilters struct {
	Priority   string
	Status     string
	EmployeeID string
}

// RequestView una solicitud junto con el nombre del empleado para ordenar
// por empleado sin volver a la base.
type RequestView struct {
	entity.StockRequest
	EmployeeName string
}

// FilterRequests devuelve una nueva secuencia con las solicitudes que cumplen
// todos los filtros activos. No muta la entrada.
func FilterRequests(in []RequestView, f RequestFilters) []RequestView {
	out := make([]RequestView, 0, len(in))
	for _, r := range in {
		if f.Priority != "" && r.Priority != f.Priority {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortRequests devuelve una copia ordenada por la clave y dirección dadas.
// Empates se resuelven por ID ascendente para que el orden sea reproducible.
// Si la clave es priority y alguna solicitud trae una prioridad desconocida,
// devuelve ErrInvalidPriority sin ordenar.
func SortRequests(in []RequestView, key RequestSortKey, dir Direction) ([]RequestView, error) {
	if !ValidDirection(dir) {
		return nil, domain.ErrInvalidInput
	}

	// Pre-calcular rangos: valida todas las prioridades antes de tocar nada.
	ranks := make([]int, len(in))
	if key == RequestSortPriority {
		for i, r := range in {
			rank, err := PriorityRank(r.Priority)
			if err != nil {
				return nil, err
			}
			ranks[i] = rank
		}
	}

	out := make([]RequestView, len(in))
	copy(out, in)
	idx := make(map[string]int, len(in)) // ID -> rango precalculado
	for i, r := range in {
		idx[r.ID] = ranks[i]
	}

	var cmp func(a, b RequestView) int
	switch key {
	case RequestSortRequestedAt:
		cmp = func(a, b RequestView) int {
			return a.RequestedAt.Compare(b.RequestedAt)
		}
	case RequestSortPriority:
		cmp = func(a, b RequestView) int {
			return idx[a.ID] - idx[b.ID]
		}
	case RequestSortEmployee:
		cmp = func(a, b RequestView) int {
			return strings.Compare(a.EmployeeName, b.EmployeeName)
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := orient(cmp(out[i], out[j]), dir)
		if c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
