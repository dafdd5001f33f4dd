package refdata

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/validate"
)

// CategoryAPI is the slice of the HTTP client the category editor needs.
type CategoryAPI interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
	ToggleActive(ctx context.Context, id int) (*domain.Category, error)
}

// CategoryEditor owns the loaded category list. The derived ProductCount is
// only returned by the list endpoint, so edits preserve the locally known
// value across responses that omit it.
type CategoryEditor struct {
	api   CategoryAPI
	log   *log.Logger
	items []domain.Category
}

// NewCategoryEditor builds an editor around the given API surface.
func NewCategoryEditor(api CategoryAPI, logger *log.Logger) *CategoryEditor {
	if logger == nil {
		logger = log.Default()
	}
	return &CategoryEditor{api: api, log: logger}
}

// Load replaces the local list with the server's.
func (e *CategoryEditor) Load(ctx context.Context) error {
	items, err := e.api.List(ctx)
	if err != nil {
		e.log.Error("failed to load categories", "error", err)
		return err
	}
	e.items = items
	return nil
}

// Items returns the current local list.
func (e *CategoryEditor) Items() []domain.Category {
	return e.items
}

// Get returns the local entry with the given id.
func (e *CategoryEditor) Get(id int) (domain.Category, bool) {
	for _, item := range e.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Category{}, false
}

// Create validates against the loaded list and appends the server response,
// initializing the derived product count to zero for the fresh record.
func (e *CategoryEditor) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	category.ID = 0
	if fields := validate.ValidateCategory(category, e.items); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	created, err := e.api.Create(ctx, category)
	if err != nil {
		e.log.Error("failed to create category", "name", category.Name, "error", err)
		return nil, err
	}
	created.ProductCount = 0
	e.items = append(e.items, *created)
	return created, nil
}

// Update validates with the own-id exclusion and replaces the local entry,
// carrying the known product count into the response.
func (e *CategoryEditor) Update(ctx context.Context, id int, category domain.Category) (*domain.Category, error) {
	category.ID = id
	if fields := validate.ValidateCategory(category, e.items); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	updated, err := e.api.Update(ctx, id, category)
	if err != nil {
		e.log.Error("failed to update category", "id", id, "error", err)
		return nil, err
	}
	if existing, ok := e.Get(id); ok {
		updated.ProductCount = existing.ProductCount
	}
	e.replace(*updated)
	return updated, nil
}

// Delete refuses locally while the category still has products; the
// endpoint is never called in that case.
func (e *CategoryEditor) Delete(ctx context.Context, id int) error {
	if existing, ok := e.Get(id); ok && existing.ProductCount > 0 {
		return ErrHasProducts
	}

	if err := e.api.Delete(ctx, id); err != nil {
		e.log.Error("failed to delete category", "id", id, "error", err)
		return err
	}
	e.remove(id)
	return nil
}

// ToggleActive flips the active flag, preserving the known product count.
func (e *CategoryEditor) ToggleActive(ctx context.Context, id int) (*domain.Category, error) {
	toggled, err := e.api.ToggleActive(ctx, id)
	if err != nil {
		e.log.Error("failed to toggle category", "id", id, "error", err)
		return nil, err
	}
	if existing, ok := e.Get(id); ok {
		toggled.ProductCount = existing.ProductCount
	}
	e.replace(*toggled)
	return toggled, nil
}

func (e *CategoryEditor) replace(category domain.Category) {
	for i := range e.items {
		if e.items[i].ID == category.ID {
			e.items[i] = category
			return
		}
	}
}

func (e *CategoryEditor) remove(id int) {
	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}
