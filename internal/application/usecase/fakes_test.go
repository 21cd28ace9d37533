package usecase_test

import (
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
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
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	p := r.products[id]
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) SetActive(id string, active bool, updatedAt time.Time) error {
	p := r.products[id]
	p.Active = active
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Active }), nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	lower := strings.ToLower(term)
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.SKU), lower)
	}), nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Active && p.Quantity <= p.MinQuantity }), nil
}

func (r *fakeProductRepo) CountByCategory(categoryID string) (int, error) {
	return len(r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID })), nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}
