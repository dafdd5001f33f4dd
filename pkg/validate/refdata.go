package validate

import (
	"strings"

	"github.com/inventaria/inventaria/pkg/domain"
)

// ValidateCountry checks required fields and code uniqueness against the
// loaded list. The record's own id is excluded from the uniqueness scan so
// edits do not collide with themselves; a zero id (creation) excludes
// nothing. Codes compare case-insensitively.
func ValidateCountry(c domain.Country, existing []domain.Country) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "name is required"
	}

	code := strings.TrimSpace(c.Code)
	switch {
	case code == "":
		errs["code"] = "code is required"
	case len(code) > domain.MaxCountryCodeLen:
		errs["code"] = "code must be at most 5 characters"
	default:
		for _, other := range existing {
			if other.ID == c.ID {
				continue
			}
			if strings.EqualFold(other.Code, code) {
				errs["code"] = "code is already in use"
				break
			}
		}
	}

	return errs
}

// ValidateCategory checks required fields, length caps and case-insensitive
// name uniqueness, with the same own-id exclusion as ValidateCountry.
func ValidateCategory(c domain.Category, existing []domain.Category) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs["name"] = "name is required"
	case len(name) > domain.MaxCategoryNameLen:
		errs["name"] = "name must be at most 100 characters"
	default:
		for _, other := range existing {
			if other.ID == c.ID {
				continue
			}
			if strings.EqualFold(other.Name, name) {
				errs["name"] = "name is already in use"
				break
			}
		}
	}

	if len(c.Description) > domain.MaxCategoryDescriptionLen {
		errs["description"] = "description must be at most 500 characters"
	}

	return errs
}
