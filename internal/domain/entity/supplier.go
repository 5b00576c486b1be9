package entity

import "time"

// Supplier representa un proveedor (entidad de referencia simple;
// Product.Supplier lo cruza por nombre, no por FK).
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
