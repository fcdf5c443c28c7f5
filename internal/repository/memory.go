package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/sweet-shop/backend/internal/models"
)

// MemoryRepository is a thread-safe in-memory implementation of SweetRepository
type MemoryRepository struct {
	mu     sync.RWMutex
	sweets map[string]models.Sweet
	names  map[string]string // lowercased name -> id, enforces name uniqueness
}

// compile-time assertion that MemoryRepository implements SweetRepository
var _ SweetRepository = (*MemoryRepository)(nil)

// NewMemoryRepository constructs an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sweets: make(map[string]models.Sweet),
		names:  make(map[string]string),
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create stores a new sweet, rejecting duplicate names
func (r *MemoryRepository) Create(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	select {
	case <-ctx.Done():
		return models.Sweet{}, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := nameKey(sweet.Name)
	if _, exists := r.names[key]; exists {
		return models.Sweet{}, &models.DuplicateError{Name: sweet.Name}
	}

	r.sweets[sweet.ID] = sweet
	r.names[key] = sweet.ID
	return sweet, nil
}

// GetAll returns every sweet sorted by name
func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.Sweet, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		out = append(out, s)
	}
	models.SortByName(out)
	return out, nil
}

// GetByID returns the sweet with the given ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (models.Sweet, error) {
	select {
	case <-ctx.Done():
		return models.Sweet{}, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sweets[id]
	if !ok {
		return models.Sweet{}, &models.NotFoundError{SweetID: id}
	}
	return s, nil
}

// Update replaces the stored record for sweet.ID
func (r *MemoryRepository) Update(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	select {
	case <-ctx.Done():
		return models.Sweet{}, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.sweets[sweet.ID]
	if !ok {
		return models.Sweet{}, &models.NotFoundError{SweetID: sweet.ID}
	}

	oldKey := nameKey(existing.Name)
	newKey := nameKey(sweet.Name)
	if newKey != oldKey {
		if owner, exists := r.names[newKey]; exists && owner != sweet.ID {
			return models.Sweet{}, &models.DuplicateError{Name: sweet.Name}
		}
		delete(r.names, oldKey)
		r.names[newKey] = sweet.ID
	}

	r.sweets[sweet.ID] = sweet
	return sweet, nil
}

// Delete removes the sweet with the given ID
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sweets[id]
	if !ok {
		return &models.NotFoundError{SweetID: id}
	}
	delete(r.sweets, id)
	delete(r.names, nameKey(s.Name))
	return nil
}

// Search returns every sweet matching the criteria, sorted by name
func (r *MemoryRepository) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Sweet, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		if criteria.Matches(s) {
			out = append(out, s)
		}
	}
	models.SortByName(out)
	return out, nil
}

// AdjustQuantity applies a stock delta under the write lock. A delta that
// would take quantity below zero fails without modifying the record.
func (r *MemoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (models.Sweet, error) {
	select {
	case <-ctx.Done():
		return models.Sweet{}, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sweets[id]
	if !ok {
		return models.Sweet{}, &models.NotFoundError{SweetID: id}
	}
	if s.Quantity+delta < 0 {
		return models.Sweet{}, &models.InsufficientStockError{
			Requested: -delta,
			Available: s.Quantity,
		}
	}
	s.Quantity += delta
	r.sweets[id] = s
	return s, nil
}
