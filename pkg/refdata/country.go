package refdata

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/validate"
)

// CountryAPI is the slice of the HTTP client the country editor needs.
type CountryAPI interface {
	List(ctx context.Context) ([]domain.Country, error)
	Create(ctx context.Context, country domain.Country) (*domain.Country, error)
	Update(ctx context.Context, id int, country domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id int) error
	ToggleActive(ctx context.Context, id int) (*domain.Country, error)
}

// CountryEditor owns the loaded country list and applies edits to it only
// after the server confirms them.
type CountryEditor struct {
	api   CountryAPI
	log   *log.Logger
	items []domain.Country
}

// NewCountryEditor builds an editor around the given API surface.
func NewCountryEditor(api CountryAPI, logger *log.Logger) *CountryEditor {
	if logger == nil {
		logger = log.Default()
	}
	return &CountryEditor{api: api, log: logger}
}

// Load replaces the local list with the server's.
func (e *CountryEditor) Load(ctx context.Context) error {
	items, err := e.api.List(ctx)
	if err != nil {
		e.log.Error("failed to load countries", "error", err)
		return err
	}
	e.items = items
	return nil
}

// Items returns the current local list.
func (e *CountryEditor) Items() []domain.Country {
	return e.items
}

// Create validates the record against the loaded list and, on success,
// appends the server's response. A uniqueness or required-field failure
// returns a ValidationError without issuing any request.
func (e *CountryEditor) Create(ctx context.Context, country domain.Country) (*domain.Country, error) {
	country.ID = 0
	if fields := validate.ValidateCountry(country, e.items); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	created, err := e.api.Create(ctx, country)
	if err != nil {
		e.log.Error("failed to create country", "code", country.Code, "error", err)
		return nil, err
	}
	e.items = append(e.items, *created)
	return created, nil
}

// Update validates with the record's own id excluded from the uniqueness
// scan and, on success, replaces the matching local entry.
func (e *CountryEditor) Update(ctx context.Context, id int, country domain.Country) (*domain.Country, error) {
	country.ID = id
	if fields := validate.ValidateCountry(country, e.items); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	updated, err := e.api.Update(ctx, id, country)
	if err != nil {
		e.log.Error("failed to update country", "id", id, "error", err)
		return nil, err
	}
	e.replace(*updated)
	return updated, nil
}

// Delete has no local guard: the server rejects the delete while products
// reference the country, and that rejection is returned as-is.
func (e *CountryEditor) Delete(ctx context.Context, id int) error {
	if err := e.api.Delete(ctx, id); err != nil {
		e.log.Error("failed to delete country", "id", id, "error", err)
		return err
	}
	e.remove(id)
	return nil
}

// ToggleActive flips the active flag through the dedicated endpoint and
// replaces the local entry with the response.
func (e *CountryEditor) ToggleActive(ctx context.Context, id int) (*domain.Country, error) {
	toggled, err := e.api.ToggleActive(ctx, id)
	if err != nil {
		e.log.Error("failed to toggle country", "id", id, "error", err)
		return nil, err
	}
	e.replace(*toggled)
	return toggled, nil
}

func (e *CountryEditor) replace(country domain.Country) {
	for i := range e.items {
		if e.items[i].ID == country.ID {
			e.items[i] = country
			return
		}
	}
}

func (e *CountryEditor) remove(id int) {
	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}
