package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y consultas para productos.
// El stock NO se toca aquí salvo que el update lo traiga explícito; los
// movimientos pasan por inventory.RegisterMovementUseCase.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. SKU y categoría son opcionales; si vienen se
// validan (SKU único, categoría existente). Stock y mínimo inician en 0 si no
// se envían; el producto nace activo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Price, in.CostPrice, in.Quantity, in.MinQuantity); err != nil {
		return nil, err
	}
	if in.SKU != "" {
		existing, err := uc.productRepo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateSKU
		}
	}
	categoryName := ""
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		categoryName = category.Name
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CostPrice:    in.CostPrice,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		Active:       true,
		CategoryID:   in.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con semántica de reemplazo: nombre, descripción,
// SKU y precios se sobreescriben siempre; stock, mínimo y activo solo si vienen
// en el request; categoría ausente desasocia la existente.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	qty := product.Quantity
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	minQty := product.MinQuantity
	if in.MinQuantity != nil {
		minQty = *in.MinQuantity
	}
	if err := validateProductFields(in.Name, in.Price, in.CostPrice, qty, minQty); err != nil {
		return nil, err
	}
	// El chequeo de unicidad excluye el propio registro: actualizar un producto
	// con su mismo SKU no es duplicado.
	if in.SKU != "" && in.SKU != product.SKU {
		existing, err := uc.productRepo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicateSKU
		}
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	} else {
		product.CategoryID = ""
		product.CategoryName = ""
	}
	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.CostPrice = in.CostPrice
	product.Quantity = qty
	product.MinQuantity = minQty
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Activate marca el producto como activo (idempotente).
func (uc *ProductUseCase) Activate(id string) (*dto.ProductResponse, error) {
	return uc.setActive(id, true)
}

// Deactivate marca el producto como inactivo (idempotente).
func (uc *ProductUseCase) Deactivate(id string) (*dto.ProductResponse, error) {
	return uc.setActive(id, false)
}

func (uc *ProductUseCase) setActive(id string, active bool) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.productRepo.SetActive(id, active, now); err != nil {
		return nil, err
	}
	product.Active = active
	product.UpdatedAt = now
	return toProductResponse(product), nil
}

// Delete elimina el producto sin condiciones; el historial de movimientos cae
// en cascada. Las categorías sí bloquean su borrado, los productos no: los
// movimientos son rastro de auditoría, no restricción referencial.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListActive devuelve solo los productos activos.
func (uc *ProductUseCase) ListActive() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por su código SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListByCategory devuelve los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string) ([]dto.ProductResponse, error) {
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.productRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por subcadena en nombre o SKU, sin distinguir mayúsculas.
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.productRepo.Search(term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock devuelve productos activos con stock en o por debajo del mínimo.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func validateProductFields(name string, price, costPrice decimal.Decimal, quantity, minQuantity int) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	if !price.IsPositive() {
		return domain.ErrInvalidInput
	}
	if costPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if quantity < 0 || minQuantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CostPrice:    p.CostPrice,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		Active:       p.Active,
		LowStock:     p.IsLowStock(),
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
