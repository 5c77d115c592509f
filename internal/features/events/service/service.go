package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"quiniela-tool-backend/internal/features/events/models"
	"quiniela-tool-backend/internal/features/events/repository"
)

// Clock supplies the current instant for selectability checks.
type Clock interface {
	Now() time.Time
}

// EventFilter narrows a catalog listing. Empty fields match everything.
type EventFilter struct {
	Sport  string
	League string
}

type EventService interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListSelectable(ctx context.Context, filter EventFilter) ([]*models.Event, error)
}

type eventService struct {
	repo  repository.EventRepository
	clock Clock
}

func NewEventService(repo repository.EventRepository, clock Clock) EventService {
	return &eventService{repo: repo, clock: clock}
}

func (s *eventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Status == "" {
		event.Status = models.EventStatusScheduled
	}
	event.CreatedAt = s.clock.Now()

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSelectable returns the events a new quiniela may still include,
// soonest first.
func (s *eventService) ListSelectable(ctx context.Context, filter EventFilter) ([]*models.Event, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	selectable := make([]*models.Event, 0, len(all))
	for _, e := range all {
		if !e.IsSelectable(now) {
			continue
		}
		if filter.Sport != "" && e.Sport != filter.Sport {
			continue
		}
		if filter.League != "" && e.League != filter.League {
			continue
		}
		selectable = append(selectable, e)
	}

	sort.Slice(selectable, func(i, j int) bool {
		return selectable[i].StartsAt.Before(selectable[j].StartsAt)
	})
	return selectable, nil
}
