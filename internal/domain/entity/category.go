package entity

import "time"

// Category representa una categoría de productos.
// No puede eliminarse mientras exista al menos un producto asociado.
type Category struct {
	ID          string
	Name        string // único, sensible a mayúsculas
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
