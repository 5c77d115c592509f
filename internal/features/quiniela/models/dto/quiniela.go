package dto

import (
	"time"

	"quiniela-tool-backend/internal/features/quiniela/draft"
	"quiniela-tool-backend/internal/features/quiniela/models"
)

// QuinielaCreateRequest represents the request body for creating a new
// quiniela. Binding tags are a first-line guard only; the full rule set
// (temporal ordering, percentage sums, conditional crypto) lives in the
// draft package and is applied by the service.
type QuinielaCreateRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	StartDate       string   `json:"start_date" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	EndTime         string   `json:"end_time" binding:"required"`
	EntryPrice      float64  `json:"entry_price" binding:"required"`
	MaxParticipants int      `json:"max_participants" binding:"min=0"` // 0 = unlimited
	Distribution    string   `json:"distribution_type" binding:"required"`
	FirstPlacePct   float64  `json:"first_place_pct"`
	SecondPlacePct  float64  `json:"second_place_pct"`
	ThirdPlacePct   float64  `json:"third_place_pct"`
	IsPublic        *bool    `json:"is_public"`
	IsCrypto        bool     `json:"is_crypto"`
	CryptoCurrency  string   `json:"crypto_currency"`
	EventIDs        []string `json:"event_ids"`
}

// QuinielaValidateRequest is the dry-run body: the same draft shape, but
// nothing is required at the binding level so a partially-filled form can
// be checked on every mutation.
type QuinielaValidateRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	StartDate       string   `json:"start_date"`
	StartTime       string   `json:"start_time"`
	EndDate         string   `json:"end_date"`
	EndTime         string   `json:"end_time"`
	EntryPrice      float64  `json:"entry_price"`
	MaxParticipants int      `json:"max_participants"`
	Distribution    string   `json:"distribution_type"`
	FirstPlacePct   float64  `json:"first_place_pct"`
	SecondPlacePct  float64  `json:"second_place_pct"`
	ThirdPlacePct   float64  `json:"third_place_pct"`
	IsPublic        *bool    `json:"is_public"`
	IsCrypto        bool     `json:"is_crypto"`
	CryptoCurrency  string   `json:"crypto_currency"`
	EventIDs        []string `json:"event_ids"`
}

// ValidationResultResponse is the dry-run outcome: the ordered error list,
// empty when the draft is acceptable.
type ValidationResultResponse struct {
	Valid  bool               `json:"valid"`
	Errors []draft.FieldError `json:"errors"`
}

// QuinielaResponse represents the response body for quiniela operations
type QuinielaResponse struct {
	ID                string                 `json:"id"`
	CreatorID         int64                  `json:"creator_id"`
	InviteCode        string                 `json:"invite_code"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	Start             string                 `json:"start"`
	End               string                 `json:"end"`
	EntryPrice        float64                `json:"entry_price"`
	MaxParticipants   int                    `json:"max_participants,omitempty"`
	Distribution      draft.DistributionType `json:"distribution_type"`
	FirstPlacePct     float64                `json:"first_place_pct"`
	SecondPlacePct    float64                `json:"second_place_pct"`
	ThirdPlacePct     float64                `json:"third_place_pct"`
	IsPublic          bool                   `json:"is_public"`
	IsCrypto          bool                   `json:"is_crypto"`
	CryptoCurrency    draft.CryptoCurrency   `json:"crypto_currency,omitempty"`
	EventIDs          []string               `json:"event_ids"`
	Status            models.QuinielaStatus  `json:"status"`
	ParticipantsCount int64                  `json:"participants_count"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// JoinRequest represents the request body for joining a quiniela
type JoinRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// ErrorResponse represents a generic error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
