package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"quiniela-tool-backend/internal/features/quiniela/models"
	"quiniela-tool-backend/internal/features/quiniela/repository"
)

const (
	keyPrefixQuiniela     = "quiniela:"
	keyPrefixParticipants = "quiniela:participants:"
	keyPrefixInviteCode   = "quiniela:invite:"
	keyActiveQuinielas    = "quinielas:active"
	keyClosedQuinielas    = "quinielas:closed"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisQuinielaRepository(client *redis.Client) repository.QuinielaRepository {
	return &redisRepository{client: client}
}

func makeQuinielaKey(id string) string {
	return keyPrefixQuiniela + id
}

func makeParticipantsKey(id string) string {
	return keyPrefixParticipants + id
}

func makeInviteCodeKey(code string) string {
	return keyPrefixInviteCode + code
}

func (r *redisRepository) Create(ctx context.Context, quiniela *models.Quiniela) error {
	data, err := json.Marshal(quiniela)
	if err != nil {
		return fmt.Errorf("failed to marshal quiniela: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeQuinielaKey(quiniela.ID), data, 0)
	pipe.Set(ctx, makeInviteCodeKey(quiniela.InviteCode), quiniela.ID, 0)
	pipe.SAdd(ctx, keyActiveQuinielas, quiniela.ID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetByID(ctx context.Context, id string) (*models.Quiniela, error) {
	data, err := r.client.Get(ctx, makeQuinielaKey(id)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrQuinielaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiniela: %w", err)
	}

	var quiniela models.Quiniela
	if err := json.Unmarshal(data, &quiniela); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiniela: %w", err)
	}
	return &quiniela, nil
}

func (r *redisRepository) GetByInviteCode(ctx context.Context, code string) (*models.Quiniela, error) {
	id, err := r.client.Get(ctx, makeInviteCodeKey(code)).Result()
	if err == redis.Nil {
		return nil, repository.ErrInviteCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *redisRepository) Update(ctx context.Context, quiniela *models.Quiniela) error {
	data, err := json.Marshal(quiniela)
	if err != nil {
		return fmt.Errorf("failed to marshal quiniela: %w", err)
	}
	return r.client.Set(ctx, makeQuinielaKey(quiniela.ID), data, 0).Err()
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	quiniela, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, makeQuinielaKey(id))
	pipe.Del(ctx, makeParticipantsKey(id))
	pipe.Del(ctx, makeInviteCodeKey(quiniela.InviteCode))
	pipe.SRem(ctx, keyActiveQuinielas, id)
	pipe.SRem(ctx, keyClosedQuinielas, id)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetActive(ctx context.Context) ([]*models.Quiniela, error) {
	ids, err := r.client.SMembers(ctx, keyActiveQuinielas).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active quinielas: %w", err)
	}

	quinielas := make([]*models.Quiniela, 0, len(ids))
	for _, id := range ids {
		quiniela, err := r.GetByID(ctx, id)
		if err == repository.ErrQuinielaNotFound {
			// Stale set member; skip it rather than failing the listing.
			continue
		}
		if err != nil {
			return nil, err
		}
		quinielas = append(quinielas, quiniela)
	}
	return quinielas, nil
}

func (r *redisRepository) UpdateStatus(ctx context.Context, id string, status models.QuinielaStatus) error {
	quiniela, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	quiniela.Status = status

	data, err := json.Marshal(quiniela)
	if err != nil {
		return fmt.Errorf("failed to marshal quiniela: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeQuinielaKey(id), data, 0)
	if status == models.QuinielaStatusActive {
		pipe.SAdd(ctx, keyActiveQuinielas, id)
		pipe.SRem(ctx, keyClosedQuinielas, id)
	} else {
		pipe.SRem(ctx, keyActiveQuinielas, id)
		pipe.SAdd(ctx, keyClosedQuinielas, id)
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) AddParticipant(ctx context.Context, quinielaID string, userID int64) error {
	added, err := r.client.SAdd(ctx, makeParticipantsKey(quinielaID), userID).Result()
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	if added == 0 {
		return models.ErrAlreadyJoined
	}
	return nil
}

func (r *redisRepository) IsParticipant(ctx context.Context, quinielaID string, userID int64) (bool, error) {
	return r.client.SIsMember(ctx, makeParticipantsKey(quinielaID), userID).Result()
}

func (r *redisRepository) GetParticipants(ctx context.Context, quinielaID string) ([]int64, error) {
	members, err := r.client.SMembers(ctx, makeParticipantsKey(quinielaID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	users := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		users = append(users, id)
	}
	return users, nil
}

func (r *redisRepository) GetParticipantsCount(ctx context.Context, quinielaID string) (int64, error) {
	return r.client.SCard(ctx, makeParticipantsKey(quinielaID)).Result()
}
