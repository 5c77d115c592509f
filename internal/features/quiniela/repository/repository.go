package repository

import (
	"context"
	"errors"

	"quiniela-tool-backend/internal/features/quiniela/models"
)

var (
	ErrQuinielaNotFound   = errors.New("quiniela not found")
	ErrInviteCodeNotFound = errors.New("invite code not found")
)

type QuinielaRepository interface {
	Create(ctx context.Context, quiniela *models.Quiniela) error
	GetByID(ctx context.Context, id string) (*models.Quiniela, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Quiniela, error)
	Update(ctx context.Context, quiniela *models.Quiniela) error
	Delete(ctx context.Context, id string) error

	GetActive(ctx context.Context) ([]*models.Quiniela, error)
	UpdateStatus(ctx context.Context, id string, status models.QuinielaStatus) error

	AddParticipant(ctx context.Context, quinielaID string, userID int64) error
	IsParticipant(ctx context.Context, quinielaID string, userID int64) (bool, error)
	GetParticipants(ctx context.Context, quinielaID string) ([]int64, error)
	GetParticipantsCount(ctx context.Context, quinielaID string) (int64, error)
}
