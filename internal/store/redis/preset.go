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

// SaveGeoPreset stores a geo preset in Redis. Presets never expire.
func (s *Store) SaveGeoPreset(ctx context.Context, preset *domain.GeoPreset) error {
	data, err := json.Marshal(preset)
	if err != nil {
		return fmt.Errorf("failed to marshal geo preset: %w", err)
	}

	key := GeoPresetKey(preset.ID)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, KeyAllGeoPresets, preset.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save geo preset: %w", err)
	}

	return nil
}

// GetGeoPreset retrieves a geo preset from Redis by ID
func (s *Store) GetGeoPreset(ctx context.Context, id string) (*domain.GeoPreset, error) {
	key := GeoPresetKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("geo preset not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get geo preset: %w", err)
	}

	var preset domain.GeoPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geo preset: %w", err)
	}

	return &preset, nil
}

// GetAllGeoPresets retrieves all geo presets, most recent first
func (s *Store) GetAllGeoPresets(ctx context.Context) ([]*domain.GeoPreset, error) {
	ids, err := s.client.SMembers(ctx, KeyAllGeoPresets).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get geo preset IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.GeoPreset{}, nil
	}

	presets := make([]*domain.GeoPreset, 0, len(ids))
	for _, id := range ids {
		preset, err := s.GetGeoPreset(ctx, id)
		if err != nil {
			// Skip presets that couldn't be retrieved
			continue
		}
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].CreatedAt.After(presets[j].CreatedAt)
	})

	return presets, nil
}

// DeleteGeoPreset removes a geo preset from Redis
func (s *Store) DeleteGeoPreset(ctx context.Context, id string) error {
	key := GeoPresetKey(id)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, KeyAllGeoPresets, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete geo preset: %w", err)
	}

	return nil
}
