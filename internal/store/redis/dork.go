package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SaveDork stores a saved dork in Redis. Library entries never expire.
func (s *Store) SaveDork(ctx context.Context, dork *domain.SavedDork) error {
	data, err := json.Marshal(dork)
	if err != nil {
		return fmt.Errorf("failed to marshal dork: %w", err)
	}

	key := DorkKey(dork.ID)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, KeyAllDorks, dork.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save dork: %w", err)
	}

	return nil
}

// GetDork retrieves a saved dork from Redis by ID
func (s *Store) GetDork(ctx context.Context, id string) (*domain.SavedDork, error) {
	key := DorkKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("dork not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get dork: %w", err)
	}

	var dork domain.SavedDork
	if err := json.Unmarshal(data, &dork); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dork: %w", err)
	}

	return &dork, nil
}

// GetAllDorks retrieves all saved dorks, most recent first
func (s *Store) GetAllDorks(ctx context.Context) ([]*domain.SavedDork, error) {
	ids, err := s.client.SMembers(ctx, KeyAllDorks).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get dork IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.SavedDork{}, nil
	}

	dorks := make([]*domain.SavedDork, 0, len(ids))
	for _, id := range ids {
		dork, err := s.GetDork(ctx, id)
		if err != nil {
			// Skip dorks that couldn't be retrieved
			continue
		}
		dorks = append(dorks, dork)
	}

	sort.Slice(dorks, func(i, j int) bool {
		return dorks[i].CreatedAt.After(dorks[j].CreatedAt)
	})

	return dorks, nil
}

// DeleteDork removes a saved dork from Redis
func (s *Store) DeleteDork(ctx context.Context, id string) error {
	key := DorkKey(id)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, KeyAllDorks, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete dork: %w", err)
	}

	return nil
}
