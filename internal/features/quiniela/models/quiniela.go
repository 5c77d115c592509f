package models

import (
	"errors"
	"time"

	"quiniela-tool-backend/internal/features/quiniela/draft"
)

var (
	ErrQuinielaFull   = errors.New("maximum number of participants reached")
	ErrQuinielaClosed = errors.New("quiniela is no longer open")
	ErrAlreadyJoined  = errors.New("user already joined this quiniela")
)

// QuinielaStatus represents the status of a quiniela
type QuinielaStatus string

const (
	QuinielaStatusActive    QuinielaStatus = "active"
	QuinielaStatusClosed    QuinielaStatus = "closed"
	QuinielaStatusCancelled QuinielaStatus = "cancelled"
)

// Quiniela is the persisted pool-betting contest record.
type Quiniela struct {
	ID              string                 `json:"id"`
	CreatorID       int64                  `json:"creator_id"`
	InviteCode      string                 `json:"invite_code"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Start           string                 `json:"start"` // local ISO-8601, no zone
	End             string                 `json:"end"`
	EntryPrice      float64                `json:"entry_price"`
	MaxParticipants int                    `json:"max_participants,omitempty"` // 0 = unlimited
	Distribution    draft.DistributionType `json:"distribution_type"`
	FirstPlacePct   float64                `json:"first_place_pct"`
	SecondPlacePct  float64                `json:"second_place_pct"`
	ThirdPlacePct   float64                `json:"third_place_pct"`
	IsPublic        bool                   `json:"is_public"`
	IsCrypto        bool                   `json:"is_crypto"`
	CryptoCurrency  draft.CryptoCurrency   `json:"crypto_currency,omitempty"`
	EventIDs        []string               `json:"event_ids"`
	Status          QuinielaStatus         `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// HasCap reports whether the quiniela limits its participants.
func (q *Quiniela) HasCap() bool {
	return q.MaxParticipants > 0
}

// CanAddParticipant reports whether one more participant fits, given the
// current count kept by the repository.
func (q *Quiniela) CanAddParticipant(current int64) bool {
	if q.Status != QuinielaStatusActive {
		return false
	}
	if q.HasCap() && current >= int64(q.MaxParticipants) {
		return false
	}
	return true
}
