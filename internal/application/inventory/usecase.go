package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// RegisterMovementUseCase es la única autoridad que puede cambiar el stock de
// un producto. Cada operación corre dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE) sobre el producto: leer, validar, calcular,
// escribir producto y movimiento, Commit o Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterEntry registra una entrada (IN): after = before + quantity.
// Quantity debe ser un entero positivo.
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, productID string, quantity int, reason string) (*dto.MovementResponse, error) {
	if productID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		before := product.Quantity
		after := before + quantity
		mov, err := uc.apply(productRepo, movementRepo, product, entity.MovementTypeIN, quantity, before, after, reason)
		if err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterIssue registra una salida (OUT): after = before - quantity.
// Falla con InsufficientStockError (con la cantidad disponible) si before < quantity;
// en ese caso no se escribe nada.
func (uc *RegisterMovementUseCase) RegisterIssue(ctx context.Context, productID string, quantity int, reason string) (*dto.MovementResponse, error) {
	if productID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		before := product.Quantity
		if before < quantity {
			return &domain.InsufficientStockError{Available: before}
		}
		after := before - quantity
		mov, err := uc.apply(productRepo, movementRepo, product, entity.MovementTypeOUT, quantity, before, after, reason)
		if err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterAdjustment registra un ajuste absoluto (ADJUSTMENT): fija el stock en
// newQuantity y guarda quantity = |newQuantity - before|. Siempre procede en
// cualquier dirección, incluido newQuantity == before (movimiento con delta 0,
// que queda como conteo confirmado en la auditoría).
func (uc *RegisterMovementUseCase) RegisterAdjustment(ctx context.Context, productID string, newQuantity int, reason string) (*dto.MovementResponse, error) {
	if productID == "" || newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		before := product.Quantity
		delta := newQuantity - before
		if delta < 0 {
			delta = -delta
		}
		mov, err := uc.apply(productRepo, movementRepo, product, entity.MovementTypeADJUSTMENT, delta, before, newQuantity, reason)
		if err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// apply escribe el nuevo stock y el movimiento con la misma marca de tiempo.
// El caller ya tiene la fila del producto bloqueada.
func (uc *RegisterMovementUseCase) apply(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	product *entity.Product,
	movementType string,
	quantity, before, after int,
	reason string,
) (*entity.StockMovement, error) {
	now := time.Now()
	if err := productRepo.UpdateQuantity(product.ID, after, now); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		ProductName:    product.Name,
		Type:           movementType,
		Quantity:       quantity,
		QuantityBefore: before,
		QuantityAfter:  after,
		Reason:         reason,
		CreatedAt:      now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Type:           m.Type,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}
