package models

import "time"

// EventStatus represents the lifecycle state of a sporting event
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusLive      EventStatus = "live"
	EventStatusFinished  EventStatus = "finished"
)

// Event is a sporting event a quiniela can be composed of. The quiniela
// core only ever sees the IDs of a selection drawn from this catalog.
type Event struct {
	ID        string      `json:"id"`
	Sport     string      `json:"sport"`
	League    string      `json:"league"`
	HomeTeam  string      `json:"home_team"`
	AwayTeam  string      `json:"away_team"`
	StartsAt  time.Time   `json:"starts_at"`
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// IsSelectable reports whether the event can still be added to a new
// quiniela at the given instant.
func (e *Event) IsSelectable(now time.Time) bool {
	return e.Status == EventStatusScheduled && e.StartsAt.After(now)
}
