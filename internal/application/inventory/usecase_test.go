package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/application/inventory"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) SetActive(id string, active bool, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.Active = active
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Search(string) ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) CountByCategory(string) (int, error)            { return 0, nil }
func (r *fakeProductRepo) Delete(id string) error                         { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List() ([]*entity.StockMovement, error) {
	// Más reciente primero, como el repositorio real.
	out := make([]*entity.StockMovement, len(r.movements))
	for i, m := range r.movements {
		out[len(r.movements)-1-i] = m
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByPeriod(from, to time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if !m.CreatedAt.Before(from) && !m.CreatedAt.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByType(movementType string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.Type == movementType {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directo, sin transacción real.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(r.productRepo, r.movementRepo)
}

func buildUseCase(products ...*entity.Product) (*inventory.RegisterMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo})
	return uc, productRepo, movementRepo
}

func testProduct(quantity int) *entity.Product {
	return &entity.Product{
		ID:       "prod-1",
		SKU:      "SKU-001",
		Name:     "Café en grano 1kg",
		Quantity: quantity,
		Active:   true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (IN)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_SumaAlStock(t *testing.T) {
	uc, productRepo, movementRepo := buildUseCase(testProduct(50))

	out, err := uc.RegisterEntry(context.Background(), "prod-1", 20, "reposición proveedor")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeIN, out.Type)
	assert.Equal(t, 20, out.Quantity)
	assert.Equal(t, 50, out.QuantityBefore)
	assert.Equal(t, 70, out.QuantityAfter)
	assert.Equal(t, "Café en grano 1kg", out.ProductName)
	assert.Equal(t, "reposición proveedor", out.Reason)

	assert.Equal(t, 70, productRepo.products["prod-1"].Quantity, "el stock debe quedar actualizado")
	require.Len(t, movementRepo.movements, 1, "debe registrarse exactamente un movimiento")
}

func TestRegisterEntry_CantidadInvalida(t *testing.T) {
	uc, _, movementRepo := buildUseCase(testProduct(50))

	for _, qty := range []int{0, -5} {
		_, err := uc.RegisterEntry(context.Background(), "prod-1", qty, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, movementRepo.movements)
}

func TestRegisterEntry_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.RegisterEntry(context.Background(), "no-existe", 10, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (OUT)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterIssue_RestaDelStock(t *testing.T) {
	uc, productRepo, _ := buildUseCase(testProduct(70))

	out, err := uc.RegisterIssue(context.Background(), "prod-1", 10, "venta mostrador")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeOUT, out.Type)
	assert.Equal(t, 10, out.Quantity)
	assert.Equal(t, 70, out.QuantityBefore)
	assert.Equal(t, 60, out.QuantityAfter)
	assert.Equal(t, 60, productRepo.products["prod-1"].Quantity)
}

func TestRegisterIssue_SalidaExacta_DejaCero(t *testing.T) {
	uc, productRepo, _ := buildUseCase(testProduct(10))

	out, err := uc.RegisterIssue(context.Background(), "prod-1", 10, "")
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantityAfter)
	assert.Equal(t, 0, productRepo.products["prod-1"].Quantity)
}

func TestRegisterIssue_StockInsuficiente(t *testing.T) {
	uc, productRepo, movementRepo := buildUseCase(testProduct(60))

	_, err := uc.RegisterIssue(context.Background(), "prod-1", 100, "pedido grande")
	require.Error(t, err)

	// El error es del tipo InsufficientStock y reporta la cantidad disponible.
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 60, insufficient.Available)

	// Nada se escribió: ni stock ni movimiento.
	assert.Equal(t, 60, productRepo.products["prod-1"].Quantity, "el stock no debe cambiar")
	assert.Empty(t, movementRepo.movements, "no debe registrarse movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes (ADJUSTMENT)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdjustment_FijaElStock(t *testing.T) {
	uc, productRepo, _ := buildUseCase(testProduct(60))

	out, err := uc.RegisterAdjustment(context.Background(), "prod-1", 0, "conteo físico: faltante total")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeADJUSTMENT, out.Type)
	assert.Equal(t, 60, out.Quantity, "quantity es el valor absoluto del delta")
	assert.Equal(t, 60, out.QuantityBefore)
	assert.Equal(t, 0, out.QuantityAfter)
	assert.Equal(t, 0, productRepo.products["prod-1"].Quantity)
}

func TestRegisterAdjustment_HaciaArriba(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct(10))

	out, err := uc.RegisterAdjustment(context.Background(), "prod-1", 45, "conteo físico")
	require.NoError(t, err)
	assert.Equal(t, 35, out.Quantity)
	assert.Equal(t, 45, out.QuantityAfter)
}

func TestRegisterAdjustment_DeltaCero_SeRegistra(t *testing.T) {
	// Ajustar al stock actual es válido: queda como conteo confirmado en la auditoría.
	uc, _, movementRepo := buildUseCase(testProduct(25))

	out, err := uc.RegisterAdjustment(context.Background(), "prod-1", 25, "conteo sin diferencias")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, 25, out.QuantityBefore)
	assert.Equal(t, 25, out.QuantityAfter)
	require.Len(t, movementRepo.movements, 1)
}

func TestRegisterAdjustment_NegativoRechazado(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct(25))

	_, err := uc.RegisterAdjustment(context.Background(), "prod-1", -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo completo: entrada, salida, salida fallida, ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCompleto_LibroConsistente(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, movementRepo := buildUseCase(testProduct(50))

	_, err := uc.RegisterEntry(ctx, "prod-1", 20, "compra")
	require.NoError(t, err)
	assert.Equal(t, 70, productRepo.products["prod-1"].Quantity)

	_, err = uc.RegisterIssue(ctx, "prod-1", 10, "venta")
	require.NoError(t, err)
	assert.Equal(t, 60, productRepo.products["prod-1"].Quantity)

	_, err = uc.RegisterIssue(ctx, "prod-1", 100, "pedido imposible")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 60, productRepo.products["prod-1"].Quantity, "la salida fallida no toca el stock")

	out, err := uc.RegisterAdjustment(ctx, "prod-1", 0, "cierre de inventario")
	require.NoError(t, err)
	assert.Equal(t, 60, out.Quantity)
	assert.Equal(t, 0, productRepo.products["prod-1"].Quantity)

	// Solo las tres operaciones exitosas quedaron en el libro, y encadenan:
	// el after de cada movimiento es el before del siguiente.
	require.Len(t, movementRepo.movements, 3)
	for i := 1; i < len(movementRepo.movements); i++ {
		assert.Equal(t, movementRepo.movements[i-1].QuantityAfter, movementRepo.movements[i].QuantityBefore,
			"el libro debe encadenar before/after")
	}
}
