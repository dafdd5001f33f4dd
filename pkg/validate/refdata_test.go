package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventaria/inventaria/pkg/domain"
)

var existingCountries = []domain.Country{
	{ID: 1, Name: "Guatemala", Code: "GT", Active: true},
	{ID: 2, Name: "Honduras", Code: "HN", Active: true},
}

func TestValidateCountry(t *testing.T) {
	t.Run("valid country", func(t *testing.T) {
		errs := ValidateCountry(domain.Country{Name: "Panama", Code: "PA"}, existingCountries)
		assert.Empty(t, errs)
	})

	t.Run("name and code required", func(t *testing.T) {
		errs := ValidateCountry(domain.Country{}, nil)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "code")
	})

	t.Run("code length capped at five", func(t *testing.T) {
		errs := ValidateCountry(domain.Country{Name: "X", Code: "TOOLONG"}, nil)
		assert.Contains(t, errs, "code")
	})

	t.Run("uniqueness is case-insensitive", func(t *testing.T) {
		errs := ValidateCountry(domain.Country{Name: "Guatemala Sur", Code: "gt"}, existingCountries)
		assert.Contains(t, errs, "code")
	})

	t.Run("own record excluded when editing", func(t *testing.T) {
		errs := ValidateCountry(domain.Country{ID: 1, Name: "Guatemala", Code: "gt"}, existingCountries)
		assert.NotContains(t, errs, "code")
	})
}

var existingCategories = []domain.Category{
	{ID: 1, Name: "Beverages", Active: true, ProductCount: 12},
	{ID: 2, Name: "Snacks", Active: true},
}

func TestValidateCategory(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{Name: "Dairy", Description: "Milk and cheese"}, existingCategories)
		assert.Empty(t, errs)
	})

	t.Run("name required", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{}, nil)
		assert.Contains(t, errs, "name")
	})

	t.Run("name length capped at 100", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{Name: strings.Repeat("a", 101)}, nil)
		assert.Contains(t, errs, "name")
	})

	t.Run("description length capped at 500", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{Name: "Dairy", Description: strings.Repeat("a", 501)}, nil)
		assert.Contains(t, errs, "description")
	})

	t.Run("uniqueness is case-insensitive", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{Name: "BEVERAGES"}, existingCategories)
		assert.Contains(t, errs, "name")
	})

	t.Run("own record excluded when editing", func(t *testing.T) {
		errs := ValidateCategory(domain.Category{ID: 1, Name: "beverages"}, existingCategories)
		assert.NotContains(t, errs, "name")
	})
}
