package refdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventaria/inventaria/pkg/domain"
)

type fakeCategoryAPI struct {
	listResult []domain.Category

	createCalls int
	deleteCalls int

	nextID int
	update domain.Category
	toggle domain.Category
}

func (f *fakeCategoryAPI) List(_ context.Context) ([]domain.Category, error) {
	return f.listResult, nil
}

func (f *fakeCategoryAPI) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	f.createCalls++
	c.ID = f.nextID
	return &c, nil
}

func (f *fakeCategoryAPI) Update(_ context.Context, id int, _ domain.Category) (*domain.Category, error) {
	out := f.update
	out.ID = id
	return &out, nil
}

func (f *fakeCategoryAPI) Delete(_ context.Context, _ int) error {
	f.deleteCalls++
	return nil
}

func (f *fakeCategoryAPI) ToggleActive(_ context.Context, _ int) (*domain.Category, error) {
	return &f.toggle, nil
}

func loadedCategoryEditor(t *testing.T, api *fakeCategoryAPI) *CategoryEditor {
	t.Helper()
	editor := NewCategoryEditor(api, nil)
	require.NoError(t, editor.Load(context.Background()))
	return editor
}

func TestCategoryEditor_Create(t *testing.T) {
	t.Run("case-insensitive duplicate name never reaches the API", func(t *testing.T) {
		api := &fakeCategoryAPI{
			listResult: []domain.Category{{ID: 1, Name: "Bebidas"}},
		}
		editor := loadedCategoryEditor(t, api)

		_, err := editor.Create(context.Background(), domain.Category{Name: "BEBIDAS"})

		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "name")
		assert.Zero(t, api.createCalls)
	})

	t.Run("fresh record starts with zero products", func(t *testing.T) {
		api := &fakeCategoryAPI{nextID: 1}
		editor := loadedCategoryEditor(t, api)

		created, err := editor.Create(context.Background(), domain.Category{Name: "Bebidas", Active: true})
		require.NoError(t, err)
		assert.Zero(t, created.ProductCount)
	})
}

func TestCategoryEditor_Update_PreservesProductCount(t *testing.T) {
	api := &fakeCategoryAPI{
		listResult: []domain.Category{{ID: 1, Name: "Bebidas", ProductCount: 12}},
		// update responses omit product_count
		update: domain.Category{Name: "Bebidas frías", Active: true},
	}
	editor := loadedCategoryEditor(t, api)

	updated, err := editor.Update(context.Background(), 1, domain.Category{Name: "Bebidas frías", Active: true})
	require.NoError(t, err)

	assert.Equal(t, 12, updated.ProductCount)
	assert.Equal(t, 12, editor.Items()[0].ProductCount)
}

func TestCategoryEditor_Delete(t *testing.T) {
	t.Run("refuses while products remain", func(t *testing.T) {
		api := &fakeCategoryAPI{
			listResult: []domain.Category{{ID: 1, Name: "Bebidas", ProductCount: 3}},
		}
		editor := loadedCategoryEditor(t, api)

		err := editor.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, ErrHasProducts)
		assert.Zero(t, api.deleteCalls)
		assert.Len(t, editor.Items(), 1)
	})

	t.Run("empty category is removed", func(t *testing.T) {
		api := &fakeCategoryAPI{
			listResult: []domain.Category{{ID: 1, Name: "Bebidas", ProductCount: 0}},
		}
		editor := loadedCategoryEditor(t, api)

		require.NoError(t, editor.Delete(context.Background(), 1))
		assert.Equal(t, 1, api.deleteCalls)
		assert.Empty(t, editor.Items())
	})
}

func TestCategoryEditor_ToggleActive_PreservesProductCount(t *testing.T) {
	api := &fakeCategoryAPI{
		listResult: []domain.Category{{ID: 1, Name: "Bebidas", Active: true, ProductCount: 7}},
		toggle:     domain.Category{ID: 1, Name: "Bebidas", Active: false},
	}
	editor := loadedCategoryEditor(t, api)

	toggled, err := editor.ToggleActive(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, toggled.Active)
	assert.Equal(t, 7, toggled.ProductCount)
	assert.Equal(t, 7, editor.Items()[0].ProductCount)
}
