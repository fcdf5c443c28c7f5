package repository

import (
	"context"
	"fmt"

	"github.com/sweet-shop/backend/internal/models"
)

// Seed populates the repository with a small demo catalog. Sweets whose names
// already exist are left untouched, so seeding a live store is safe.
func Seed(ctx context.Context, repo SweetRepository) error {
	samples := []struct {
		name     string
		category string
		price    float64
		quantity int
	}{
		{"Chocolate Fudge Cake", models.CategoryCake, 18.50, 6},
		{"Red Velvet Cake", models.CategoryCake, 21.00, 3},
		{"Oatmeal Raisin Cookie", models.CategoryCookie, 1.75, 40},
		{"Double Choc Chip Cookie", models.CategoryCookie, 2.25, 25},
		{"Gummy Bears", models.CategoryCandy, 3.99, 50},
		{"Vanilla Ice Cream", models.CategoryIceCream, 4.50, 12},
		{"Apple Pie", models.CategoryPie, 14.00, 4},
		{"Almond Croissant", models.CategoryPastry, 3.25, 0},
		{"Dark Chocolate Bar", models.CategoryChocolate, 2.50, 30},
		{"Rock Candy", models.CategoryCandy, 1.50, 0},
	}

	for _, sample := range samples {
		sweet, err := models.NewSweet(sample.name, sample.category, sample.price, sample.quantity)
		if err != nil {
			return fmt.Errorf("building seed sweet %q: %w", sample.name, err)
		}
		if _, err := repo.Create(ctx, sweet); err != nil {
			if models.IsDuplicate(err) {
				continue
			}
			return fmt.Errorf("seeding sweet %q: %w", sample.name, err)
		}
	}
	return nil
}
