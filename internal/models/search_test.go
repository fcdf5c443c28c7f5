package models

import "testing"

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestSearchCriteria_IsEmpty(t *testing.T) {
	if !(SearchCriteria{}).IsEmpty() {
		t.Error("zero criteria should be empty")
	}
	if (SearchCriteria{Name: "choc"}).IsEmpty() {
		t.Error("criteria with a name should not be empty")
	}
	if (SearchCriteria{InStock: boolPtr(false)}).IsEmpty() {
		t.Error("criteria with a stock filter should not be empty")
	}
}

func TestSearchCriteria_Matches(t *testing.T) {
	sweet := Sweet{Name: "Dark Chocolate Bar", Category: CategoryChocolate, Price: 2.5, Quantity: 3}
	empty := Sweet{Name: "Rock Candy", Category: CategoryCandy, Price: 1.5, Quantity: 0}

	tests := []struct {
		name     string
		criteria SearchCriteria
		sweet    Sweet
		want     bool
	}{
		{"empty criteria matches", SearchCriteria{}, sweet, true},
		{"name substring case-insensitive", SearchCriteria{Name: "chocolate"}, sweet, true},
		{"name substring uppercase", SearchCriteria{Name: "DARK"}, sweet, true},
		{"name substring miss", SearchCriteria{Name: "vanilla"}, sweet, false},
		{"category case-insensitive exact", SearchCriteria{Category: "chocolate"}, sweet, true},
		{"category miss", SearchCriteria{Category: "Candy"}, sweet, false},
		{"category substring does not match", SearchCriteria{Category: "Choc"}, sweet, false},
		{"min price inclusive", SearchCriteria{MinPrice: floatPtr(2.5)}, sweet, true},
		{"min price excludes", SearchCriteria{MinPrice: floatPtr(2.51)}, sweet, false},
		{"max price inclusive", SearchCriteria{MaxPrice: floatPtr(2.5)}, sweet, true},
		{"max price excludes", SearchCriteria{MaxPrice: floatPtr(2.49)}, sweet, false},
		{"price range", SearchCriteria{MinPrice: floatPtr(1), MaxPrice: floatPtr(3)}, sweet, true},
		{"in stock true matches stocked", SearchCriteria{InStock: boolPtr(true)}, sweet, true},
		{"in stock true rejects empty", SearchCriteria{InStock: boolPtr(true)}, empty, false},
		{"in stock false matches empty", SearchCriteria{InStock: boolPtr(false)}, empty, true},
		{"in stock false rejects stocked", SearchCriteria{InStock: boolPtr(false)}, sweet, false},
		{"combined criteria", SearchCriteria{Name: "bar", Category: "CHOCOLATE", MinPrice: floatPtr(2)}, sweet, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(tt.sweet); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}
