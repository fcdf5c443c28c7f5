// Package service implements the inventory operations over the catalog store.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sweet-shop/backend/internal/models"
	"github.com/sweet-shop/backend/internal/repository"
)

// SweetService handles business logic for sweets. It holds no state of its
// own; every operation validates, delegates to the repository, and returns
// the post-mutation record.
type SweetService struct {
	repo repository.SweetRepository
}

// NewSweetService creates a new sweet service
func NewSweetService(repo repository.SweetRepository) *SweetService {
	return &SweetService{
		repo: repo,
	}
}

// validateID rejects identifiers that are not well-formed UUIDs
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &models.InvalidIdentifierError{SweetID: id}
	}
	return nil
}

// Create validates and persists a new sweet. All four fields are required.
func (s *SweetService) Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
	verr := &models.ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name is required")
	}
	if req.Category == "" {
		verr.Add("category", "category is required")
	}
	if req.Price == nil {
		verr.Add("price", "price is required")
	}
	if req.Quantity == nil {
		verr.Add("quantity", "quantity is required")
	}
	if err := verr.OrNil(); err != nil {
		return models.Sweet{}, err
	}

	sweet, err := models.NewSweet(req.Name, req.Category, *req.Price, *req.Quantity)
	if err != nil {
		return models.Sweet{}, err
	}

	return s.repo.Create(ctx, sweet)
}

// GetAll returns the full catalog sorted by name
func (s *SweetService) GetAll(ctx context.Context) ([]models.Sweet, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns a single sweet
func (s *SweetService) GetByID(ctx context.Context, id string) (models.Sweet, error) {
	if err := validateID(id); err != nil {
		return models.Sweet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Search returns sweets matching the criteria, sorted by name
func (s *SweetService) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Sweet, error) {
	return s.repo.Search(ctx, criteria)
}

// Update applies the supplied fields to an existing sweet. Every supplied
// field is validated before anything is written, so an invalid request
// leaves the record untouched.
func (s *SweetService) Update(ctx context.Context, id string, req models.UpdateSweetRequest) (models.Sweet, error) {
	if err := validateID(id); err != nil {
		return models.Sweet{}, err
	}

	sweet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Sweet{}, err
	}

	verr := &models.ValidationError{}
	if name := strings.TrimSpace(req.Name); name != "" {
		if reason := models.ValidateName(name); reason != "" {
			verr.Add("name", reason)
		} else {
			sweet.Name = name
		}
	}
	if req.Category != "" {
		if reason := models.ValidateCategory(req.Category); reason != "" {
			verr.Add("category", reason)
		} else {
			sweet.Category = req.Category
		}
	}
	if req.Price != nil {
		if reason := models.ValidatePrice(*req.Price); reason != "" {
			verr.Add("price", reason)
		} else {
			sweet.Price = models.RoundPrice(*req.Price)
		}
	}
	if req.Quantity != nil {
		if reason := models.ValidateQuantity(*req.Quantity); reason != "" {
			verr.Add("quantity", reason)
		} else {
			sweet.Quantity = *req.Quantity
		}
	}
	if err := verr.OrNil(); err != nil {
		return models.Sweet{}, err
	}

	return s.repo.Update(ctx, sweet)
}

// Delete removes a sweet. Deleting an already-deleted ID reports not found.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Purchase takes quantity units out of stock. Non-positive and over-limit
// requests fail the same way; the store applies the decrement atomically.
func (s *SweetService) Purchase(ctx context.Context, id string, quantity int) (models.PurchaseResult, error) {
	if err := validateID(id); err != nil {
		return models.PurchaseResult{}, err
	}

	sweet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.PurchaseResult{}, err
	}
	if !sweet.CanPurchase(quantity) {
		return models.PurchaseResult{}, &models.InsufficientStockError{
			Requested: quantity,
			Available: sweet.Quantity,
		}
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, -quantity)
	if err != nil {
		return models.PurchaseResult{}, err
	}

	return models.PurchaseResult{
		Sweet:             updated,
		PurchasedQuantity: quantity,
		RemainingStock:    updated.Quantity,
	}, nil
}

// Restock adds quantity units of stock
func (s *SweetService) Restock(ctx context.Context, id string, quantity int) (models.RestockResult, error) {
	if err := validateID(id); err != nil {
		return models.RestockResult{}, err
	}
	if quantity <= 0 {
		return models.RestockResult{}, &models.InvalidQuantityError{Quantity: quantity}
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, quantity)
	if err != nil {
		return models.RestockResult{}, err
	}

	return models.RestockResult{
		Sweet:             updated,
		RestockedQuantity: quantity,
		TotalStock:        updated.Quantity,
	}, nil
}
