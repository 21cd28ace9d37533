package repository

import (
	"time"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Los movimientos son inmutables: solo alta y lectura.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// ListByPeriod filtra por fecha de movimiento con límites inclusivos.
	ListByPeriod(from, to time.Time) ([]*entity.StockMovement, error)
	ListByType(movementType string) ([]*entity.StockMovement, error)
}
