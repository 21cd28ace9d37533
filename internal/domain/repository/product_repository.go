package repository

import (
	"time"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe; el caso de uso
// traduce la ausencia a domain.ErrNotFound.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; es la barrera de serialización por
	// producto del motor de movimientos.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity escribe únicamente el stock (usado por el motor de movimientos).
	UpdateQuantity(id string, quantity int, updatedAt time.Time) error
	SetActive(id string, active bool, updatedAt time.Time) error
	List() ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	// Search busca por subcadena en nombre o SKU, sin distinguir mayúsculas.
	Search(term string) ([]*entity.Product, error)
	// ListLowStock devuelve productos activos con quantity <= min_quantity.
	ListLowStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
