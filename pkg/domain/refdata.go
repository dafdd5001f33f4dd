package domain

// Country is a reference record scoping products, movements and users.
// Code is unique case-insensitively among all countries.
type Country struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// Category is a product category. ProductCount is derived server-side and is
// not returned by every endpoint; the client preserves the last known value.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Active       bool   `json:"active"`
	ProductCount int    `json:"product_count"`
}

// Limits enforced on reference records before any request is issued.
const (
	MaxCountryCodeLen         = 5
	MaxCategoryNameLen        = 100
	MaxCategoryDescriptionLen = 500
)
