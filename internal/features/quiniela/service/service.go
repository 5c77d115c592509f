package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quiniela-tool-backend/internal/common/logger"
	"quiniela-tool-backend/internal/features/quiniela/draft"
	"quiniela-tool-backend/internal/features/quiniela/mapper"
	"quiniela-tool-backend/internal/features/quiniela/models"
	"quiniela-tool-backend/internal/features/quiniela/models/dto"
	"quiniela-tool-backend/internal/features/quiniela/repository"
)

// Clock supplies the current instant for draft validation. Production uses
// the wall clock; tests inject a fixed one.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall-clock Clock.
func RealClock() Clock { return realClock{} }

type QuinielaService interface {
	Create(ctx context.Context, creatorID int64, req *dto.QuinielaCreateRequest) (*dto.QuinielaResponse, error)
	ValidateDraft(req *dto.QuinielaValidateRequest) *dto.ValidationResultResponse
	GetByID(ctx context.Context, id string) (*dto.QuinielaResponse, error)
	GetByInviteCode(ctx context.Context, code string) (*dto.QuinielaResponse, error)
	ListActive(ctx context.Context) ([]*dto.QuinielaResponse, error)
	Join(ctx context.Context, quinielaID string, userID int64) error
	Participants(ctx context.Context, quinielaID string) ([]int64, error)
}

type quinielaService struct {
	repo  repository.QuinielaRepository
	clock Clock
}

func NewQuinielaService(repo repository.QuinielaRepository, clock Clock) QuinielaService {
	return &quinielaService{
		repo:  repo,
		clock: clock,
	}
}

// Create validates the incoming draft against the injected clock, builds
// the normalized submission and persists it with a fresh ID and invite
// code. Validation failures come back as draft.Errors so the handler can
// surface the full ordered list.
func (s *quinielaService) Create(ctx context.Context, creatorID int64, req *dto.QuinielaCreateRequest) (*dto.QuinielaResponse, error) {
	d := mapper.CreateRequestToDraft(req)

	validated, errs := draft.Validate(d, s.clock.Now())
	if len(errs) > 0 {
		return nil, errs
	}

	submission := draft.Build(validated)
	quiniela := mapper.SubmissionToQuiniela(
		submission,
		uuid.New().String(),
		newInviteCode(),
		creatorID,
		s.clock.Now(),
	)

	if err := s.repo.Create(ctx, quiniela); err != nil {
		return nil, fmt.Errorf("failed to create quiniela: %w", err)
	}

	logger.Info().
		Str("quiniela_id", quiniela.ID).
		Int64("creator_id", creatorID).
		Str("invite_code", quiniela.InviteCode).
		Msg("Quiniela created")

	return mapper.QuinielaToResponse(quiniela, 0), nil
}

// ValidateDraft is the dry-run the form runs on every mutation. It never
// touches storage.
func (s *quinielaService) ValidateDraft(req *dto.QuinielaValidateRequest) *dto.ValidationResultResponse {
	_, errs := draft.Validate(mapper.ValidateRequestToDraft(req), s.clock.Now())
	if errs == nil {
		errs = draft.Errors{}
	}
	return &dto.ValidationResultResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func (s *quinielaService) GetByID(ctx context.Context, id string) (*dto.QuinielaResponse, error) {
	quiniela, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, quiniela)
}

func (s *quinielaService) GetByInviteCode(ctx context.Context, code string) (*dto.QuinielaResponse, error) {
	quiniela, err := s.repo.GetByInviteCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, quiniela)
}

func (s *quinielaService) ListActive(ctx context.Context) ([]*dto.QuinielaResponse, error) {
	quinielas, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuinielaResponse, 0, len(quinielas))
	for _, q := range quinielas {
		resp, err := s.toResponse(ctx, q)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Join adds a participant, enforcing the cap and the closed-state rules.
func (s *quinielaService) Join(ctx context.Context, quinielaID string, userID int64) error {
	quiniela, err := s.repo.GetByID(ctx, quinielaID)
	if err != nil {
		return err
	}

	if quiniela.Status != models.QuinielaStatusActive {
		return models.ErrQuinielaClosed
	}

	count, err := s.repo.GetParticipantsCount(ctx, quinielaID)
	if err != nil {
		return err
	}
	if !quiniela.CanAddParticipant(count) {
		return models.ErrQuinielaFull
	}

	if err := s.repo.AddParticipant(ctx, quinielaID, userID); err != nil {
		return err
	}

	logger.Info().
		Str("quiniela_id", quinielaID).
		Int64("user_id", userID).
		Msg("Participant joined")

	return nil
}

func (s *quinielaService) Participants(ctx context.Context, quinielaID string) ([]int64, error) {
	if _, err := s.repo.GetByID(ctx, quinielaID); err != nil {
		return nil, err
	}
	return s.repo.GetParticipants(ctx, quinielaID)
}

func (s *quinielaService) toResponse(ctx context.Context, quiniela *models.Quiniela) (*dto.QuinielaResponse, error) {
	count, err := s.repo.GetParticipantsCount(ctx, quiniela.ID)
	if err != nil {
		return nil, err
	}
	return mapper.QuinielaToResponse(quiniela, count), nil
}

// newInviteCode derives a short shareable code. Eight hex characters of a
// fresh uuid keep collisions out of range for the catalog sizes involved.
func newInviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
