package mapper

import (
	"time"

	"quiniela-tool-backend/internal/features/quiniela/draft"
	"quiniela-tool-backend/internal/features/quiniela/models"
	"quiniela-tool-backend/internal/features/quiniela/models/dto"
)

// CreateRequestToDraft maps the create request onto a draft, starting from
// the form-open defaults so omitted fields keep their canonical values.
func CreateRequestToDraft(req *dto.QuinielaCreateRequest) draft.Draft {
	d := draft.New()
	d.Name = req.Name
	d.Description = req.Description
	d.StartDate = req.StartDate
	if req.StartTime != "" {
		d.StartTime = req.StartTime
	}
	d.EndDate = req.EndDate
	if req.EndTime != "" {
		d.EndTime = req.EndTime
	}
	d.EntryPrice = req.EntryPrice
	d.MaxParticipants = req.MaxParticipants
	d.Distribution = draft.DistributionType(req.Distribution)
	d.FirstPlacePct = req.FirstPlacePct
	d.SecondPlacePct = req.SecondPlacePct
	d.ThirdPlacePct = req.ThirdPlacePct
	if req.IsPublic != nil {
		d.IsPublic = *req.IsPublic
	}
	d.IsCrypto = req.IsCrypto
	d.CryptoCurrency = draft.CryptoCurrency(req.CryptoCurrency)
	d.EventIDs = req.EventIDs
	return d
}

// ValidateRequestToDraft maps the dry-run request onto a draft verbatim,
// without defaults: the caller is checking exactly what the form holds.
func ValidateRequestToDraft(req *dto.QuinielaValidateRequest) draft.Draft {
	d := draft.Draft{
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       req.StartDate,
		StartTime:       req.StartTime,
		EndDate:         req.EndDate,
		EndTime:         req.EndTime,
		EntryPrice:      req.EntryPrice,
		MaxParticipants: req.MaxParticipants,
		Distribution:    draft.DistributionType(req.Distribution),
		FirstPlacePct:   req.FirstPlacePct,
		SecondPlacePct:  req.SecondPlacePct,
		ThirdPlacePct:   req.ThirdPlacePct,
		IsPublic:        true,
		IsCrypto:        req.IsCrypto,
		CryptoCurrency:  draft.CryptoCurrency(req.CryptoCurrency),
		EventIDs:        req.EventIDs,
	}
	if req.IsPublic != nil {
		d.IsPublic = *req.IsPublic
	}
	return d
}

// SubmissionToQuiniela materializes a submission into the persisted record.
func SubmissionToQuiniela(s draft.Submission, id, inviteCode string, creatorID int64, now time.Time) *models.Quiniela {
	return &models.Quiniela{
		ID:              id,
		CreatorID:       creatorID,
		InviteCode:      inviteCode,
		Name:            s.Name,
		Description:     s.Description,
		Start:           s.Start,
		End:             s.End,
		EntryPrice:      s.EntryPrice,
		MaxParticipants: s.MaxParticipants,
		Distribution:    s.Distribution,
		FirstPlacePct:   s.FirstPlacePct,
		SecondPlacePct:  s.SecondPlacePct,
		ThirdPlacePct:   s.ThirdPlacePct,
		IsPublic:        s.IsPublic,
		IsCrypto:        s.IsCrypto,
		CryptoCurrency:  s.CryptoCurrency,
		EventIDs:        s.EventIDs,
		Status:          models.QuinielaStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// QuinielaToResponse maps a persisted record to its response shape.
func QuinielaToResponse(q *models.Quiniela, participants int64) *dto.QuinielaResponse {
	return &dto.QuinielaResponse{
		ID:                q.ID,
		CreatorID:         q.CreatorID,
		InviteCode:        q.InviteCode,
		Name:              q.Name,
		Description:       q.Description,
		Start:             q.Start,
		End:               q.End,
		EntryPrice:        q.EntryPrice,
		MaxParticipants:   q.MaxParticipants,
		Distribution:      q.Distribution,
		FirstPlacePct:     q.FirstPlacePct,
		SecondPlacePct:    q.SecondPlacePct,
		ThirdPlacePct:     q.ThirdPlacePct,
		IsPublic:          q.IsPublic,
		IsCrypto:          q.IsCrypto,
		CryptoCurrency:    q.CryptoCurrency,
		EventIDs:          q.EventIDs,
		Status:            q.Status,
		ParticipantsCount: participants,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}
