// internal/milestones/redis_store.go
package milestones

import (
	"context"
	"encoding/json"
	"fmt"

	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each owner's milestone sequence as one JSON value, keyed
// by email. Reads are fail-soft like the file store: a corrupt value logs and
// reads as empty.
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisStore(client *redis.Client, log logger.Logger) *RedisStore {
	return &RedisStore{client: client, logger: log}
}

func milestoneKey(owner string) string {
	return fmt.Sprintf("milestones:%s", owner)
}

func (s *RedisStore) Load(ctx context.Context, owner string) ([]models.Milestone, error) {
	data, err := s.client.Get(ctx, milestoneKey(owner)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var milestones []models.Milestone
	if err := json.Unmarshal(data, &milestones); err != nil {
		s.logger.Warn("Failed to parse stored milestones, treating as empty", map[string]interface{}{
			"owner": owner,
			"error": err.Error(),
		})
		return nil, nil
	}
	return milestones, nil
}

func (s *RedisStore) Save(ctx context.Context, owner string, milestones []models.Milestone) error {
	if len(milestones) == 0 {
		if err := s.client.Del(ctx, milestoneKey(owner)).Err(); err != nil {
			return fmt.Errorf("redis del failed: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(milestones)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, milestoneKey(owner), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
