// Package validate holds the client-side domain rules applied before any
// write is sent to the inventory API. Validation failures are field-scoped
// and block submission; they never reach the wire.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/inventaria/inventaria/pkg/domain"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// UserInput carries the raw user form fields. Identifier fields are strings
// because selectors produce strings; BuildPayload coerces them to integers.
type UserInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	RoleID      string
	CountryIDs  []string
	CategoryIDs []string

	// CategoryID mirrors the legacy single-category field.
	CategoryID string

	Active  bool
	Editing bool
}

// ValidateUser evaluates every rule independently and returns one message
// per failing field. An empty map means submission may proceed.
func ValidateUser(in UserInput, roles []domain.Role) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "email is not valid"
	}

	if !in.Editing && in.Password == "" {
		errs["password"] = "password is required"
	}

	if strings.TrimSpace(in.FirstName) == "" {
		errs["first_name"] = "first name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs["last_name"] = "last name is required"
	}

	if in.RoleID == "" {
		errs["role_id"] = "role is required"
	}

	if len(in.CountryIDs) == 0 {
		errs["country_ids"] = "at least one country is required"
	}

	if role, ok := resolveRole(in.RoleID, roles); ok && role.IsCommercial() {
		if len(in.CategoryIDs) == 0 {
			errs["category_ids"] = "at least one category is required for the commercial role"
		}
	}

	return errs
}

// ApplyRole enforces the category invariant continuously: whenever the
// selected role is not commercial, any previously chosen categories are
// dropped so they cannot leak into a later submission.
func ApplyRole(in *UserInput, roles []domain.Role) {
	role, ok := resolveRole(in.RoleID, roles)
	if ok && role.IsCommercial() {
		return
	}
	in.CategoryIDs = nil
	in.CategoryID = ""
}

// BuildPayload normalizes a validated input into the outgoing JSON body.
// Role and country identifiers are coerced to integers. A blank password in
// edit mode is omitted entirely, and an empty category selection omits both
// category fields rather than sending an empty set.
func BuildPayload(in UserInput) (map[string]any, error) {
	payload := map[string]any{
		"email":      strings.TrimSpace(in.Email),
		"first_name": strings.TrimSpace(in.FirstName),
		"last_name":  strings.TrimSpace(in.LastName),
		"active":     in.Active,
	}

	roleID, err := strconv.Atoi(in.RoleID)
	if err != nil {
		return nil, fmt.Errorf("invalid role id %q: %w", in.RoleID, err)
	}
	payload["role_id"] = roleID

	countryIDs, err := atoiAll(in.CountryIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid country id: %w", err)
	}
	payload["country_ids"] = countryIDs

	if in.Password != "" || !in.Editing {
		payload["password"] = in.Password
	}

	if len(in.CategoryIDs) > 0 {
		categoryIDs, err := atoiAll(in.CategoryIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		payload["category_ids"] = categoryIDs

		if in.CategoryID != "" {
			legacy, err := strconv.Atoi(in.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("invalid category id %q: %w", in.CategoryID, err)
			}
			payload["category_id"] = legacy
		}
	}

	return payload, nil
}

func resolveRole(id string, roles []domain.Role) (domain.Role, bool) {
	for _, r := range roles {
		if strconv.Itoa(r.ID) == id {
			return r, true
		}
	}
	return domain.Role{}, false
}

func atoiAll(values []string) ([]int, error) {
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", v)
		}
		out = append(out, n)
	}
	return out, nil
}
