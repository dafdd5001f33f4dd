package refdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventaria/inventaria/pkg/domain"
)

type fakeCountryAPI struct {
	listResult []domain.Country

	createCalls int
	updateCalls int
	deleteCalls int
	toggleCalls int

	createErr error
	deleteErr error

	nextID int
	toggle domain.Country
}

func (f *fakeCountryAPI) List(_ context.Context) ([]domain.Country, error) {
	return f.listResult, nil
}

func (f *fakeCountryAPI) Create(_ context.Context, c domain.Country) (*domain.Country, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = f.nextID
	return &c, nil
}

func (f *fakeCountryAPI) Update(_ context.Context, id int, c domain.Country) (*domain.Country, error) {
	f.updateCalls++
	c.ID = id
	return &c, nil
}

func (f *fakeCountryAPI) Delete(_ context.Context, _ int) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeCountryAPI) ToggleActive(_ context.Context, _ int) (*domain.Country, error) {
	f.toggleCalls++
	return &f.toggle, nil
}

func loadedCountryEditor(t *testing.T, api *fakeCountryAPI) *CountryEditor {
	t.Helper()
	editor := NewCountryEditor(api, nil)
	require.NoError(t, editor.Load(context.Background()))
	return editor
}

func TestCountryEditor_Create(t *testing.T) {
	t.Run("appends the server response", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT"}},
			nextID:     2,
		}
		editor := loadedCountryEditor(t, api)

		created, err := editor.Create(context.Background(), domain.Country{Name: "Honduras", Code: "HN", Active: true})
		require.NoError(t, err)

		assert.Equal(t, 2, created.ID)
		assert.Len(t, editor.Items(), 2)
	})

	t.Run("case-insensitive duplicate code never reaches the API", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT"}},
		}
		editor := loadedCountryEditor(t, api)

		_, err := editor.Create(context.Background(), domain.Country{Name: "Otra", Code: "gt"})

		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "code")
		assert.Zero(t, api.createCalls)
		assert.Len(t, editor.Items(), 1)
	})

	t.Run("request failure leaves the list untouched", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT"}},
			createErr:  errors.New("boom"),
		}
		editor := loadedCountryEditor(t, api)

		_, err := editor.Create(context.Background(), domain.Country{Name: "Honduras", Code: "HN"})
		assert.Error(t, err)
		assert.Len(t, editor.Items(), 1)
	})
}

func TestCountryEditor_Update(t *testing.T) {
	t.Run("own code does not collide", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{
				{ID: 1, Name: "Guatemala", Code: "GT"},
				{ID: 2, Name: "Honduras", Code: "HN"},
			},
		}
		editor := loadedCountryEditor(t, api)

		updated, err := editor.Update(context.Background(), 1, domain.Country{Name: "Guatemala", Code: "gt", Active: false})
		require.NoError(t, err)

		assert.Equal(t, "gt", updated.Code)
		assert.Equal(t, "gt", editor.Items()[0].Code)
		assert.Equal(t, 1, api.updateCalls)
	})

	t.Run("another record's code collides", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{
				{ID: 1, Name: "Guatemala", Code: "GT"},
				{ID: 2, Name: "Honduras", Code: "HN"},
			},
		}
		editor := loadedCountryEditor(t, api)

		_, err := editor.Update(context.Background(), 2, domain.Country{Name: "Honduras", Code: "GT"})
		_, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Zero(t, api.updateCalls)
	})
}

func TestCountryEditor_Delete(t *testing.T) {
	t.Run("removes the entry on success", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT"}},
		}
		editor := loadedCountryEditor(t, api)

		require.NoError(t, editor.Delete(context.Background(), 1))
		assert.Empty(t, editor.Items())
	})

	t.Run("server rejection keeps the entry", func(t *testing.T) {
		api := &fakeCountryAPI{
			listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT"}},
			deleteErr:  errors.New("country has products assigned"),
		}
		editor := loadedCountryEditor(t, api)

		err := editor.Delete(context.Background(), 1)
		assert.Error(t, err)
		assert.Len(t, editor.Items(), 1)
	})
}

func TestCountryEditor_ToggleActive(t *testing.T) {
	api := &fakeCountryAPI{
		listResult: []domain.Country{{ID: 1, Name: "Guatemala", Code: "GT", Active: true}},
		toggle:     domain.Country{ID: 1, Name: "Guatemala", Code: "GT", Active: false},
	}
	editor := loadedCountryEditor(t, api)

	toggled, err := editor.ToggleActive(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, toggled.Active)
	assert.False(t, editor.Items()[0].Active)
}
