package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada: after = before + quantity
	MovementTypeOUT        = "OUT"        // salida: after = before - quantity, requiere before >= quantity
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste absoluto: after = nueva cantidad, quantity = |after - before|
)

// IsValidMovementType valida el discriminante de tipo.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement es una entrada inmutable del libro de movimientos: registra el
// delta aplicado y la foto antes/después del stock. Nunca se actualiza ni se
// elimina de forma independiente de su producto.
type StockMovement struct {
	ID             string
	ProductID      string
	ProductName    string // snapshot solo lectura, se llena con JOIN en las consultas
	Type           string
	Quantity       int // magnitud del delta, siempre >= 0
	QuantityBefore int
	QuantityAfter  int
	Reason         string
	CreatedAt      time.Time
}
