package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/inventaria/inventaria/pkg/domain"
)

// UsersService wraps the /users endpoints.
type UsersService struct {
	client *Client
}

// UserPage is one page of a user listing.
type UserPage struct {
	Items []domain.User `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
}

// List fetches users, filtered and paginated.
func (s *UsersService) List(ctx context.Context, filters domain.UserFilters) (*UserPage, error) {
	var page UserPage
	req := s.client.http.R().SetContext(ctx).SetResult(&page).SetError(&APIError{})

	if filters.RoleID > 0 {
		req.SetQueryParam("role_id", strconv.Itoa(filters.RoleID))
	}
	if filters.CountryID > 0 {
		req.SetQueryParam("country_id", strconv.Itoa(filters.CountryID))
	}
	if filters.Active != nil {
		req.SetQueryParam("active", strconv.FormatBool(*filters.Active))
	}
	if filters.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(filters.Page))
	}
	if filters.PageSize > 0 {
		req.SetQueryParam("page_size", strconv.Itoa(filters.PageSize))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if resp.StatusCode() >= 400 {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr != nil {
			apiErr.StatusCode = resp.StatusCode()
			return nil, apiErr
		}
		return nil, &APIError{StatusCode: resp.StatusCode()}
	}
	return &page, nil
}

// Get fetches a single user.
func (s *UsersService) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// Create submits a normalized creation payload (see validate.BuildPayload).
func (s *UsersService) Create(ctx context.Context, payload map[string]any) (*domain.User, error) {
	var user domain.User
	if err := s.client.doRequest(ctx, http.MethodPost, "/users", payload, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update submits a normalized update payload. A blank password never
// appears in the payload; the server keeps the current one.
func (s *UsersService) Update(ctx context.Context, id int, payload map[string]any) (*domain.User, error) {
	var user domain.User
	if err := s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, &user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes a user.
func (s *UsersService) Delete(ctx context.Context, id int) error {
	if err := s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// Search runs a free-text search over users.
func (s *UsersService) Search(ctx context.Context, query string) ([]domain.User, error) {
	var users []domain.User
	path := "/users/search/" + url.PathEscape(query)
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// Roles fetches the role lookup list.
func (s *UsersService) Roles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := s.client.doRequest(ctx, http.MethodGet, "/users/reference/roles", nil, &roles); err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}
	return roles, nil
}

// Countries fetches the country lookup list used by user selectors.
func (s *UsersService) Countries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := s.client.doRequest(ctx, http.MethodGet, "/users/reference/countries", nil, &countries); err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	return countries, nil
}

// Categories fetches the category lookup list used by user selectors.
func (s *UsersService) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.client.doRequest(ctx, http.MethodGet, "/users/reference/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Reference fetches the three lookup lists in parallel and joins them,
// failing if any fetch fails. User forms wait for all of them before
// rendering.
func (s *UsersService) Reference(ctx context.Context) ([]domain.Role, []domain.Country, []domain.Category, error) {
	var (
		roles      []domain.Role
		countries  []domain.Country
		categories []domain.Category
	)

	errCh := make(chan error, 3)
	go func() {
		var err error
		roles, err = s.Roles(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		countries, err = s.Countries(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		categories, err = s.Categories(ctx)
		errCh <- err
	}()

	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil {
			return nil, nil, nil, err
		}
	}
	return roles, countries, categories, nil
}
