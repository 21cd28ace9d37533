package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es el total corrido autoritativo; los movimientos son historial de auditoría,
// nunca se recalcula el stock a partir de ellos.
type Product struct {
	ID           string
	SKU          string // código único, vacío = sin SKU
	Name         string
	Description  string
	Price        decimal.Decimal // precio de venta (> 0)
	CostPrice    decimal.Decimal // precio de costo (>= 0)
	Quantity     int             // stock actual, nunca negativo
	MinQuantity  int             // umbral mínimo para alerta de stock bajo
	Active       bool
	CategoryID   string // vacío = sin categoría
	CategoryName string // solo lectura, se llena con JOIN en las consultas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
// Siempre derivado, nunca persistido.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}
