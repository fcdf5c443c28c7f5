package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sweet-shop/backend/internal/models"
)

// RedisRepository implements SweetRepository on Redis. Each sweet lives in a
// hash keyed by ID, a set indexes all IDs, and a per-name key enforces the
// unique-name constraint.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// compile-time assertion that RedisRepository implements SweetRepository
var _ SweetRepository = (*RedisRepository)(nil)

// adjustScript applies a quantity delta atomically. Returns the new quantity,
// -1 when the delta would take stock below zero, -2 when the key is missing.
var adjustScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -2
end
local qty = tonumber(redis.call('HGET', KEYS[1], 'quantity'))
local delta = tonumber(ARGV[1])
if qty + delta < 0 then
  return -1
end
return redis.call('HINCRBY', KEYS[1], 'quantity', ARGV[1])
`)

// NewRedisRepository connects to Redis at the given URL and verifies the
// connection with a ping before returning.
func NewRedisRepository(url, prefix string) (*RedisRepository, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if prefix == "" {
		prefix = "sweetshop"
	}

	return &RedisRepository{client: client, prefix: prefix}, nil
}

// Close releases the underlying connection pool
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) sweetKey(id string) string {
	return fmt.Sprintf("%s:sweet:%s", r.prefix, id)
}

func (r *RedisRepository) indexKey() string {
	return fmt.Sprintf("%s:sweets", r.prefix)
}

func (r *RedisRepository) nameKey(name string) string {
	return fmt.Sprintf("%s:name:%s", r.prefix, strings.ToLower(strings.TrimSpace(name)))
}

func sweetToHash(s models.Sweet) map[string]interface{} {
	return map[string]interface{}{
		"id":       s.ID,
		"name":     s.Name,
		"category": s.Category,
		"price":    strconv.FormatFloat(s.Price, 'f', -1, 64),
		"quantity": s.Quantity,
	}
}

func sweetFromHash(fields map[string]string) (models.Sweet, error) {
	price, err := strconv.ParseFloat(fields["price"], 64)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("parsing price %q: %w", fields["price"], err)
	}
	quantity, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return models.Sweet{}, fmt.Errorf("parsing quantity %q: %w", fields["quantity"], err)
	}
	return models.Sweet{
		ID:       fields["id"],
		Name:     fields["name"],
		Category: fields["category"],
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Create stores a new sweet, claiming its name key first so duplicate names
// are rejected regardless of which instance writes
func (r *RedisRepository) Create(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	claimed, err := r.client.SetNX(ctx, r.nameKey(sweet.Name), sweet.ID, 0).Result()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("claiming name: %w", err)
	}
	if !claimed {
		return models.Sweet{}, &models.DuplicateError{Name: sweet.Name}
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.sweetKey(sweet.ID), sweetToHash(sweet))
	pipe.SAdd(ctx, r.indexKey(), sweet.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		// roll back the name claim so a retry can succeed
		r.client.Del(ctx, r.nameKey(sweet.Name))
		return models.Sweet{}, fmt.Errorf("storing sweet: %w", err)
	}
	return sweet, nil
}

// GetAll returns every sweet sorted by name
func (r *RedisRepository) GetAll(ctx context.Context) ([]models.Sweet, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("listing sweet ids: %w", err)
	}

	out := make([]models.Sweet, 0, len(ids))
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, r.sweetKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("loading sweet %s: %w", id, err)
		}
		if len(fields) == 0 {
			// index entry without a record; skip rather than fail the listing
			continue
		}
		s, err := sweetFromHash(fields)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	models.SortByName(out)
	return out, nil
}

// GetByID returns the sweet with the given ID
func (r *RedisRepository) GetByID(ctx context.Context, id string) (models.Sweet, error) {
	fields, err := r.client.HGetAll(ctx, r.sweetKey(id)).Result()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("loading sweet %s: %w", id, err)
	}
	if len(fields) == 0 {
		return models.Sweet{}, &models.NotFoundError{SweetID: id}
	}
	return sweetFromHash(fields)
}

// Update replaces the stored record, re-claiming the name key on rename
func (r *RedisRepository) Update(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	existing, err := r.GetByID(ctx, sweet.ID)
	if err != nil {
		return models.Sweet{}, err
	}

	oldName := r.nameKey(existing.Name)
	newName := r.nameKey(sweet.Name)
	if newName != oldName {
		claimed, err := r.client.SetNX(ctx, newName, sweet.ID, 0).Result()
		if err != nil {
			return models.Sweet{}, fmt.Errorf("claiming name: %w", err)
		}
		if !claimed {
			owner, _ := r.client.Get(ctx, newName).Result()
			if owner != sweet.ID {
				return models.Sweet{}, &models.DuplicateError{Name: sweet.Name}
			}
		}
	}

	if err := r.client.HSet(ctx, r.sweetKey(sweet.ID), sweetToHash(sweet)).Err(); err != nil {
		// roll back the name claim so the name stays usable
		if newName != oldName {
			r.client.Del(ctx, newName)
		}
		return models.Sweet{}, fmt.Errorf("storing sweet: %w", err)
	}
	if newName != oldName {
		r.client.Del(ctx, oldName)
	}
	return sweet, nil
}

// Delete removes the sweet, its index entry, and its name claim
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.sweetKey(id))
	pipe.SRem(ctx, r.indexKey(), id)
	pipe.Del(ctx, r.nameKey(existing.Name))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting sweet %s: %w", id, err)
	}
	return nil
}

// Search loads the catalog and filters it client-side; the result is sorted
// by name. The catalog is small enough that server-side querying would only
// buy complexity.
func (r *RedisRepository) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Sweet, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Sweet, 0, len(all))
	for _, s := range all {
		if criteria.Matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// AdjustQuantity runs the delta through a Lua script so the bounds check and
// the increment are a single atomic step on the server
func (r *RedisRepository) AdjustQuantity(ctx context.Context, id string, delta int) (models.Sweet, error) {
	res, err := adjustScript.Run(ctx, r.client, []string{r.sweetKey(id)}, delta).Int()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("adjusting quantity for %s: %w", id, err)
	}

	switch res {
	case -2:
		return models.Sweet{}, &models.NotFoundError{SweetID: id}
	case -1:
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return models.Sweet{}, err
		}
		return models.Sweet{}, &models.InsufficientStockError{
			Requested: -delta,
			Available: current.Quantity,
		}
	}

	return r.GetByID(ctx, id)
}
