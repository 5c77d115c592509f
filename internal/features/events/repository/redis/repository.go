package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quiniela-tool-backend/internal/features/events/models"
	"quiniela-tool-backend/internal/features/events/repository"
)

const (
	keyPrefixEvent = "event:"
	keyAllEvents   = "events:all"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisEventRepository(client *redis.Client) repository.EventRepository {
	return &redisRepository{client: client}
}

func makeEventKey(id string) string {
	return keyPrefixEvent + id
}

func (r *redisRepository) Create(ctx context.Context, event *models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeEventKey(event.ID), data, 0)
	pipe.SAdd(ctx, keyAllEvents, event.ID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	data, err := r.client.Get(ctx, makeEventKey(id)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}

func (r *redisRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	ids, err := r.client.SMembers(ctx, keyAllEvents).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.GetByID(ctx, id)
		if err == repository.ErrEventNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
