package models

import "strings"

// SearchCriteria is a sparse filter over the catalog. Nil or empty fields are
// treated as absent and match everything.
type SearchCriteria struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}

// IsEmpty reports whether no criterion is set
func (c SearchCriteria) IsEmpty() bool {
	return c.Name == "" &&
		c.Category == "" &&
		c.MinPrice == nil &&
		c.MaxPrice == nil &&
		c.InStock == nil
}

// Matches reports whether the sweet satisfies every present criterion:
// case-insensitive substring on name, case-insensitive exact match on
// category, inclusive price bounds, and exact stock presence.
func (c SearchCriteria) Matches(s Sweet) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(c.Name)) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(s.Category, c.Category) {
		return false
	}
	if c.MinPrice != nil && s.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && s.Price > *c.MaxPrice {
		return false
	}
	if c.InStock != nil {
		if *c.InStock && s.Quantity == 0 {
			return false
		}
		if !*c.InStock && s.Quantity > 0 {
			return false
		}
	}
	return true
}
