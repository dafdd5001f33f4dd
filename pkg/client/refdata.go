package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inventaria/inventaria/pkg/domain"
)

// CountriesService wraps the /countries endpoints.
type CountriesService struct {
	client *Client
}

// List fetches all countries.
func (s *CountriesService) List(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := s.client.doRequest(ctx, http.MethodGet, "/countries", nil, &countries); err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// Create adds a country and returns the stored record.
func (s *CountriesService) Create(ctx context.Context, country domain.Country) (*domain.Country, error) {
	var created domain.Country
	if err := s.client.doRequest(ctx, http.MethodPost, "/countries", country, &created); err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	return &created, nil
}

// Update replaces a country and returns the stored record.
func (s *CountriesService) Update(ctx context.Context, id int, country domain.Country) (*domain.Country, error) {
	var updated domain.Country
	if err := s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/countries/%d", id), country, &updated); err != nil {
		return nil, fmt.Errorf("failed to update country %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a country. The server rejects the delete while products
// still reference the country; the rejection detail is surfaced as-is.
func (s *CountriesService) Delete(ctx context.Context, id int) error {
	if err := s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/countries/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete country %d: %w", id, err)
	}
	return nil
}

// ToggleActive flips the active flag and returns the stored record.
func (s *CountriesService) ToggleActive(ctx context.Context, id int) (*domain.Country, error) {
	var toggled domain.Country
	path := fmt.Sprintf("/countries/%d/toggle-active", id)
	if err := s.client.doRequest(ctx, http.MethodPatch, path, nil, &toggled); err != nil {
		return nil, fmt.Errorf("failed to toggle country %d: %w", id, err)
	}
	return &toggled, nil
}

// CategoriesService wraps the /categories endpoints.
type CategoriesService struct {
	client *Client
}

// List fetches all categories, including their derived product counts.
func (s *CategoriesService) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.client.doRequest(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create adds a category and returns the stored record.
func (s *CategoriesService) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var created domain.Category
	if err := s.client.doRequest(ctx, http.MethodPost, "/categories", category, &created); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

// Update replaces a category and returns the stored record. The response
// does not carry the derived product count.
func (s *CategoriesService) Update(ctx context.Context, id int, category domain.Category) (*domain.Category, error) {
	var updated domain.Category
	if err := s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), category, &updated); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, id int) error {
	if err := s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}

// ToggleActive flips the active flag and returns the stored record.
func (s *CategoriesService) ToggleActive(ctx context.Context, id int) (*domain.Category, error) {
	var toggled domain.Category
	path := fmt.Sprintf("/categories/%d/toggle-active", id)
	if err := s.client.doRequest(ctx, http.MethodPatch, path, nil, &toggled); err != nil {
		return nil, fmt.Errorf("failed to toggle category %d: %w", id, err)
	}
	return &toggled, nil
}
