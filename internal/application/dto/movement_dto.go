package dto

import "time"

// RegisterMovementRequest body para entradas (IN) y salidas (OUT).
// Quantity es el delta a aplicar, siempre positivo.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

// RegisterAdjustmentRequest body para ajustes (ADJUSTMENT).
// NewQuantity es la cantidad absoluta resultante, >= 0. Puede coincidir con el
// stock actual: se registra un movimiento con delta 0 como conteo confirmado.
type RegisterAdjustmentRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	NewQuantity int    `json:"new_quantity" validate:"min=0"`
	Reason      string `json:"reason"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
