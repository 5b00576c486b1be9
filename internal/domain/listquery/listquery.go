// Package listquery implementa vistas derivadas de colecciones en memoria:
// filtrado multi-campo (AND) y ordenamiento con desempate determinista.
// No hace I/O ni muta la colección de entrada.
package listquery

// Direction dirección de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ValidDirection indica si la dirección es asc o desc.
func ValidDirection(d Direction) bool {
	return d == Asc || d == Desc
}

// orient ajusta el resultado de una comparación ascendente a la dirección pedida.
func orient(cmp int, dir Direction) int {
	if dir == Desc {
		return -cmp
	}
	return cmp
}
