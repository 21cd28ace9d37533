package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// productSelect trae el producto con el nombre de su categoría (si tiene).
const productSelect = `
	SELECT p.id, p.sku, p.name, p.description, p.price, p.cost_price,
	       p.quantity, p.min_quantity, p.active, p.category_id, c.name,
	       p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var categoryID, categoryName *string
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&p.Quantity, &p.MinQuantity, &p.Active, &categoryID, &categoryName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CategoryID = orEmpty(categoryID)
	p.CategoryName = orEmpty(categoryName)
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, price, cost_price, quantity, min_quantity, active, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.CostPrice, product.Quantity, product.MinQuantity,
		product.Active, nullIfEmpty(product.CategoryID), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), productSelect+` WHERE p.sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Sin JOIN: el lock es solo sobre products y CategoryName queda vacío.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, cost_price,
		       quantity, min_quantity, active, category_id,
		       created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&p.Quantity, &p.MinQuantity, &p.Active, &categoryID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	p.CategoryID = orEmpty(categoryID)
	return &p, nil
}

// Update sobreescribe el producto completo (incluido stock si el caso de uso lo decidió).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, price = $5, cost_price = $6,
		    quantity = $7, min_quantity = $8, active = $9, category_id = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.CostPrice, product.Quantity, product.MinQuantity,
		product.Active, nullIfEmpty(product.CategoryID), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity escribe solo el stock (usado por el motor de movimientos).
func (r *ProductRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// SetActive cambia la bandera de activo.
func (r *ProductRepo) SetActive(id string, active bool, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = $2, updated_at = $3 WHERE id = $1`,
		id, active, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(productSelect + ` ORDER BY p.created_at DESC`)
}

// ListActive devuelve solo los productos activos.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	return r.list(productSelect + ` WHERE p.active ORDER BY p.created_at DESC`)
}

// ListByCategory devuelve los productos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	return r.list(productSelect+` WHERE p.category_id = $1 ORDER BY p.created_at DESC`, categoryID)
}

// Search busca por subcadena en nombre o SKU, sin distinguir mayúsculas (ILIKE).
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	pattern := "%" + term + "%"
	return r.list(productSelect+` WHERE p.name ILIKE $1 OR p.sku ILIKE $1 ORDER BY p.created_at DESC`, pattern)
}

// ListLowStock devuelve productos activos con quantity <= min_quantity.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.list(productSelect + ` WHERE p.quantity <= p.min_quantity AND p.active ORDER BY p.name`)
}

// CountByCategory cuenta los productos asociados a una categoría (gate de borrado).
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// Delete elimina un producto por ID; los movimientos caen en cascada (FK).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
