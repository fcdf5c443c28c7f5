// Package repository provides catalog storage backends for sweets.
package repository

import (
	"context"

	"github.com/sweet-shop/backend/internal/models"
)

// SweetRepository defines the catalog store interface. Implementations own
// record-level consistency: AdjustQuantity applies the stock delta atomically
// and never lets quantity drop below zero.
type SweetRepository interface {
	Create(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	GetAll(ctx context.Context) ([]models.Sweet, error)
	GetByID(ctx context.Context, id string) (models.Sweet, error)
	Update(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Sweet, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (models.Sweet, error)
}
