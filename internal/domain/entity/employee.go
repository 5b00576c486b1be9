package entity

import "time"

// Employee representa un empleado que puede tener productos asignados y
// pedir reposiciones. Su borrado está restringido mientras existan
// asignaciones o solicitudes que lo referencien.
type Employee struct {
	ID        string
	Name      string
	Surname   string
	CreatedAt time.Time
}

// FullName nombre para mostrar ("Nombre Apellido").
func (e *Employee) FullName() string {
	if e.Surname == "" {
		return e.Name
	}
	return e.Name + " " + e.Surname
}
