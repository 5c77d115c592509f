package repository

import (
	"context"
	"errors"

	"quiniela-tool-backend/internal/features/events/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
}
