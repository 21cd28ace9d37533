package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// movementSelect trae el movimiento con el nombre actual del producto.
// El JOIN siempre resuelve: borrar un producto borra sus movimientos en cascada.
const movementSelect = `
	SELECT m.id, m.product_id, p.name, m.type, m.quantity,
	       m.quantity_before, m.quantity_after, m.reason, m.created_at
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id`

// Create persiste un movimiento del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, quantity_before, quantity_after, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.QuantityBefore, movement.QuantityAfter, movement.Reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), movementSelect+` WHERE m.id = $1`, id).Scan(
		&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
		&m.QuantityBefore, &m.QuantityAfter, &m.Reason, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// List devuelve el historial completo, más reciente primero.
func (r *StockMovementRepo) List() ([]*entity.StockMovement, error) {
	return r.list(movementSelect + ` ORDER BY m.created_at DESC`)
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return r.list(movementSelect+` WHERE m.product_id = $1 ORDER BY m.created_at DESC`, productID)
}

// ListByPeriod filtra por fecha de movimiento, límites inclusivos.
func (r *StockMovementRepo) ListByPeriod(from, to time.Time) ([]*entity.StockMovement, error) {
	return r.list(movementSelect+` WHERE m.created_at >= $1 AND m.created_at <= $2 ORDER BY m.created_at DESC`, from, to)
}

// ListByType filtra por tipo de movimiento.
func (r *StockMovementRepo) ListByType(movementType string) ([]*entity.StockMovement, error) {
	return r.list(movementSelect+` WHERE m.type = $1 ORDER BY m.created_at DESC`, movementType)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
			&m.QuantityBefore, &m.QuantityAfter, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
