package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
)

const cartKeyPrefix = "cart:"

func cartKey(userID int64) string {
	return cartKeyPrefix + strconv.FormatInt(userID, 10)
}

// cmdable is the subset of redis.Client used by the store; tests substitute
// a miniature in-memory implementation.
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// CartStore keeps per-user carts in Redis as JSON documents with a TTL.
// Serialization happens only at this boundary; everything above operates on
// model.Cart.
type CartStore struct {
	client cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Redis-backed cart store.
func New(addr string, ttl time.Duration, logger *slog.Logger) *CartStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &CartStore{client: client, ttl: ttl, logger: logger}
}

// Load reads the user's cart, returning an empty cart when none is stored.
func (s *CartStore) Load(ctx context.Context, userID int64) (*model.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &model.Cart{UserID: userID}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	cart.UserID = userID
	return &cart, nil
}

// Save writes the cart back, refreshing its TTL. An empty cart is deleted
// instead of stored.
func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, cart.UserID)
	}

	cart.UpdatedAt = time.Now()
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete removes the user's cart.
func (s *CartStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// UserIDs enumerates users with persisted carts, up to limit, using SCAN so
// the sweep never blocks the server.
func (s *CartStore) UserIDs(ctx context.Context, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 64
	}

	var (
		ids    []int64
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, cartKeyPrefix+"*", int64(limit)).Result()
		if err != nil {
			return nil, fmt.Errorf("scan carts: %w", err)
		}
		for _, key := range keys {
			id, err := strconv.ParseInt(strings.TrimPrefix(key, cartKeyPrefix), 10, 64)
			if err != nil {
				s.logger.Warn("skipping malformed cart key", slog.String("key", key))
				continue
			}
			ids = append(ids, id)
			if len(ids) >= limit {
				return ids, nil
			}
		}
		cursor = next
		if cursor == 0 {
			return ids, nil
		}
	}
}
