package entity

import "time"

// Category representa una categoría de productos (entidad de referencia simple).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
