// Package domain defines the entities exchanged with the inventory API.
package domain

import "strings"

// User is an administrator-managed account. CountryIDs must never be empty;
// CategoryIDs is required only while the assigned role is commercial and is
// cleared for every other role.
type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	RoleID      int    `json:"role_id"`
	Role        *Role  `json:"role,omitempty"`
	Active      bool   `json:"active"`
	CountryIDs  []int  `json:"country_ids"`
	CategoryIDs []int  `json:"category_ids,omitempty"`

	// CategoryID is the legacy single-category field still produced by
	// older API versions. Kept so payloads stay backward compatible.
	CategoryID int `json:"category_id,omitempty"`
}

// FullName joins the name fields for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Role is a user role. Tag is the language-neutral code the client compares
// against; Name is the localized display string and must not be used for
// identity checks.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// RoleTagCommercial marks roles restricted to a category subset.
const RoleTagCommercial = "commercial"

// IsCommercial reports whether the role restricts its users to a set of
// product categories. Servers that predate role tags send only the localized
// name, so the English and Spanish spellings are folded into the tag.
func (r Role) IsCommercial() bool {
	if r.Tag != "" {
		return r.Tag == RoleTagCommercial
	}
	switch strings.ToLower(strings.TrimSpace(r.Name)) {
	case "commercial", "comercial":
		return true
	}
	return false
}

// UserFilters narrows a user listing.
type UserFilters struct {
	RoleID    int
	CountryID int
	Active    *bool
	Page      int
	PageSize  int
}
