package models

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Sweet categories. Category values outside this set are rejected.
const (
	CategoryCake      = "Cake"
	CategoryCookie    = "Cookie"
	CategoryCandy     = "Candy"
	CategoryIceCream  = "Ice Cream"
	CategoryPie       = "Pie"
	CategoryPastry    = "Pastry"
	CategoryChocolate = "Chocolate"
	CategoryOther     = "Other"
)

// DefaultCategory is used when no category is supplied
const DefaultCategory = CategoryOther

// Categories lists every valid category value
var Categories = []string{
	CategoryCake,
	CategoryCookie,
	CategoryCandy,
	CategoryIceCream,
	CategoryPie,
	CategoryPastry,
	CategoryChocolate,
	CategoryOther,
}

// Stock status labels derived from quantity
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// lowStockThreshold is the quantity below which an item counts as low stock
const lowStockThreshold = 5

// Name length bounds, in characters after trimming
const (
	minNameLength = 2
	maxNameLength = 100
)

// Sweet represents a single product in the catalog
type Sweet struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewSweet builds a validated Sweet with a generated ID. The name is trimmed
// and the price rounded to two decimal places before storage.
func NewSweet(name, category string, price float64, quantity int) (Sweet, error) {
	s := Sweet{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Category: category,
		Price:    RoundPrice(price),
		Quantity: quantity,
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	if err := s.Validate(); err != nil {
		return Sweet{}, err
	}
	return s, nil
}

// Validate checks every invariant on the sweet and reports all violations
func (s Sweet) Validate() error {
	verr := &ValidationError{}
	if reason := ValidateName(s.Name); reason != "" {
		verr.Add("name", reason)
	}
	if reason := ValidateCategory(s.Category); reason != "" {
		verr.Add("category", reason)
	}
	if reason := ValidatePrice(s.Price); reason != "" {
		verr.Add("price", reason)
	}
	if reason := ValidateQuantity(s.Quantity); reason != "" {
		verr.Add("quantity", reason)
	}
	return verr.OrNil()
}

// InStock reports whether any stock remains
func (s Sweet) InStock() bool {
	return s.Quantity > 0
}

// StockStatus returns the display label for the current stock level
func (s Sweet) StockStatus() string {
	switch {
	case s.Quantity == 0:
		return StatusOutOfStock
	case s.Quantity < lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// CanPurchase reports whether the requested quantity can be taken from stock.
// Pure predicate, no side effect.
func (s Sweet) CanPurchase(requested int) bool {
	return requested > 0 && requested <= s.Quantity
}

// MarshalJSON includes the derived inStock and stockStatus fields so API
// consumers never compute stock state themselves
func (s Sweet) MarshalJSON() ([]byte, error) {
	type plain Sweet
	return json.Marshal(struct {
		plain
		InStock     bool   `json:"inStock"`
		StockStatus string `json:"stockStatus"`
	}{
		plain:       plain(s),
		InStock:     s.InStock(),
		StockStatus: s.StockStatus(),
	})
}

// RoundPrice rounds a price to two decimal places, half away from zero
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

// Field validators. Each returns an empty string when the value is valid,
// otherwise the reason for rejection.

// ValidateName checks the trimmed name length bounds. Bounds are counted in
// characters, not bytes, so multi-byte names are measured correctly.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "name is required"
	}
	length := utf8.RuneCountInString(trimmed)
	if length < minNameLength {
		return fmt.Sprintf("name must be at least %d characters long", minNameLength)
	}
	if length > maxNameLength {
		return fmt.Sprintf("name cannot exceed %d characters", maxNameLength)
	}
	return ""
}

// ValidateCategory checks membership in the category set
func ValidateCategory(category string) string {
	for _, c := range Categories {
		if category == c {
			return ""
		}
	}
	return fmt.Sprintf("category must be one of: %s", strings.Join(Categories, ", "))
}

// ValidatePrice checks that the price is strictly positive
func ValidatePrice(price float64) string {
	if price <= 0 {
		return "price must be greater than 0"
	}
	return ""
}

// ValidateQuantity checks that the quantity is non-negative
func ValidateQuantity(quantity int) string {
	if quantity < 0 {
		return "quantity cannot be negative"
	}
	return ""
}

// SortByName orders sweets by name ascending, case-sensitive
func SortByName(sweets []Sweet) {
	sort.Slice(sweets, func(i, j int) bool {
		return sweets[i].Name < sweets[j].Name
	})
}
