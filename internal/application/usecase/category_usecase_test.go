package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	_, err := uc.Create(dto.CategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// La unicidad es sensible a mayúsculas: "bebidas" es otro nombre.
	_, err = uc.Create(dto.CategoryRequest{Name: "bebidas"})
	assert.NoError(t, err)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	_, err := uc.Create(dto.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_ExcluyeElPropioRegistro(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	created, err := uc.Create(dto.CategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	other, err := uc.Create(dto.CategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	// Renombrar conservando el propio nombre no es duplicado.
	out, err := uc.Update(created.ID, dto.CategoryRequest{Name: "Bebidas", Description: "frías y calientes"})
	require.NoError(t, err)
	assert.Equal(t, "frías y calientes", out.Description)

	// Tomar el nombre de otra categoría sí lo es.
	_, err = uc.Update(other.ID, dto.CategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCategoryDelete_BloqueadaConProductos(t *testing.T) {
	categoryRepo := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Bebidas"})
	productRepo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Café", CategoryID: "cat-1", Active: true},
	)
	uc := usecase.NewCategoryUseCase(categoryRepo, productRepo)

	err := uc.Delete("cat-1")
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)

	// Sin productos asociados el borrado procede.
	require.NoError(t, productRepo.Delete("p1"))
	assert.NoError(t, uc.Delete("cat-1"))

	_, err = uc.GetByID("cat-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestCategoryList_OrdenadaPorNombre(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(
		&entity.Category{ID: "c2", Name: "Snacks"},
		&entity.Category{ID: "c1", Name: "Bebidas"},
	), newFakeProductRepo())

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Bebidas", out[0].Name)
	assert.Equal(t, "Snacks", out[1].Name)
}
