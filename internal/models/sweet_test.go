package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewSweet(t *testing.T) {
	sweet, err := NewSweet("  Choco Bar  ", CategoryChocolate, 2.5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sweet.ID == "" {
		t.Error("expected a generated ID")
	}
	if sweet.Name != "Choco Bar" {
		t.Errorf("expected trimmed name 'Choco Bar', got %q", sweet.Name)
	}
	if sweet.Category != CategoryChocolate {
		t.Errorf("expected category Chocolate, got %s", sweet.Category)
	}
	if sweet.Price != 2.5 {
		t.Errorf("expected price 2.5, got %f", sweet.Price)
	}
	if sweet.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", sweet.Quantity)
	}
}

func TestNewSweet_DefaultCategory(t *testing.T) {
	sweet, err := NewSweet("Mystery Treat", "", 1.0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sweet.Category != CategoryOther {
		t.Errorf("expected default category Other, got %s", sweet.Category)
	}
}

func TestNewSweet_Validation(t *testing.T) {
	tests := []struct {
		name      string
		sweetName string
		category  string
		price     float64
		quantity  int
		wantField string
	}{
		{
			name:      "name too short",
			sweetName: "X",
			category:  CategoryCandy,
			price:     1.0,
			quantity:  1,
			wantField: "name",
		},
		{
			name:      "name too long",
			sweetName: strings.Repeat("a", 101),
			category:  CategoryCandy,
			price:     1.0,
			quantity:  1,
			wantField: "name",
		},
		{
			name:      "multi-byte name still one character",
			sweetName: "é",
			category:  CategoryCandy,
			price:     1.0,
			quantity:  1,
			wantField: "name",
		},
		{
			name:      "101 multi-byte characters",
			sweetName: strings.Repeat("é", 101),
			category:  CategoryCandy,
			price:     1.0,
			quantity:  1,
			wantField: "name",
		},
		{
			name:      "unknown category",
			sweetName: "Lemon Drop",
			category:  "Beverage",
			price:     1.0,
			quantity:  1,
			wantField: "category",
		},
		{
			name:      "lowercase category rejected",
			sweetName: "Lemon Drop",
			category:  "candy",
			price:     1.0,
			quantity:  1,
			wantField: "category",
		},
		{
			name:      "zero price",
			sweetName: "Lemon Drop",
			category:  CategoryCandy,
			price:     0,
			quantity:  1,
			wantField: "price",
		},
		{
			name:      "negative price",
			sweetName: "Lemon Drop",
			category:  CategoryCandy,
			price:     -2.5,
			quantity:  1,
			wantField: "price",
		},
		{
			name:      "negative quantity",
			sweetName: "Lemon Drop",
			category:  CategoryCandy,
			price:     1.0,
			quantity:  -1,
			wantField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSweet(tt.sweetName, tt.category, tt.price, tt.quantity)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr *ValidationError
			if !IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			verr = err.(*ValidationError)
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in error, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestValidateName_CountsCharactersNotBytes(t *testing.T) {
	// 60 accented characters are 120 bytes but well within the 100-character bound
	if reason := ValidateName(strings.Repeat("é", 60)); reason != "" {
		t.Errorf("60-character accented name should be valid, got %q", reason)
	}
	// exactly at the bounds
	if reason := ValidateName("éé"); reason != "" {
		t.Errorf("2-character accented name should be valid, got %q", reason)
	}
	if reason := ValidateName(strings.Repeat("é", 100)); reason != "" {
		t.Errorf("100-character accented name should be valid, got %q", reason)
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	s := Sweet{ID: "x", Name: "A", Category: "Nope", Price: 0, Quantity: -3}
	err := s.Validate()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	verr := err.(*ValidationError)
	if len(verr.Fields) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		// 1.005 is represented just below 1.005, so it rounds down; this
		// matches how the price is rounded everywhere in the system
		{1.005, 1.0},
		{2.5, 2.5},
		{9.99, 9.99},
		{10.999, 11.0},
		{3.141, 3.14},
		{0.01, 0.01},
	}

	for _, tt := range tests {
		if got := RoundPrice(tt.in); got != tt.want {
			t.Errorf("RoundPrice(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		quantity int
		want     string
	}{
		{0, StatusOutOfStock},
		{1, StatusLowStock},
		{4, StatusLowStock},
		{5, StatusInStock},
		{100, StatusInStock},
	}

	for _, tt := range tests {
		s := Sweet{Quantity: tt.quantity}
		if got := s.StockStatus(); got != tt.want {
			t.Errorf("quantity %d: expected %q, got %q", tt.quantity, tt.want, got)
		}
	}
}

func TestCanPurchase(t *testing.T) {
	s := Sweet{Quantity: 5}

	tests := []struct {
		requested int
		want      bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{5, true},
		{6, false},
	}

	for _, tt := range tests {
		if got := s.CanPurchase(tt.requested); got != tt.want {
			t.Errorf("CanPurchase(%d) = %v, want %v", tt.requested, got, tt.want)
		}
	}
}

func TestMarshalJSON_DerivedFields(t *testing.T) {
	s := Sweet{ID: "abc", Name: "Fudge", Category: CategoryChocolate, Price: 2.5, Quantity: 3}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if out["inStock"] != true {
		t.Errorf("expected inStock true, got %v", out["inStock"])
	}
	if out["stockStatus"] != StatusLowStock {
		t.Errorf("expected stockStatus %q, got %v", StatusLowStock, out["stockStatus"])
	}
}
