package inventory

import (
	"time"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// MovementQueryUseCase lecturas del libro de movimientos. Sin mutación ni
// estado propio; va directo al repositorio (pool, sin transacción).
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consultas.
func NewMovementQueryUseCase(movementRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// List devuelve el historial completo, más reciente primero.
func (uc *MovementQueryUseCase) List() ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementQueryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(mov), nil
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (uc *MovementQueryUseCase) ListByProduct(productID string) ([]dto.MovementResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByPeriod filtra por rango de fechas con límites inclusivos.
func (uc *MovementQueryUseCase) ListByPeriod(from, to time.Time) ([]dto.MovementResponse, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByPeriod(from, to)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByType filtra por tipo de movimiento (IN, OUT, ADJUSTMENT).
func (uc *MovementQueryUseCase) ListByType(movementType string) ([]dto.MovementResponse, error) {
	if !entity.IsValidMovementType(movementType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByType(movementType)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponses(list []*entity.StockMovement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items
}
