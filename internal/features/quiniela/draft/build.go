package draft

// Submission is the normalized record a validated draft produces. It is the
// exact shape handed to the creation collaborator: dates and times merged
// into local ISO-8601 timestamps, the crypto currency and participant cap
// normalized.
type Submission struct {
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Start           string           `json:"start"`
	End             string           `json:"end"`
	EntryPrice      float64          `json:"entry_price"`
	MaxParticipants int              `json:"max_participants,omitempty"`
	Distribution    DistributionType `json:"distribution_type"`
	FirstPlacePct   float64          `json:"first_place_pct"`
	SecondPlacePct  float64          `json:"second_place_pct"`
	ThirdPlacePct   float64          `json:"third_place_pct"`
	IsPublic        bool             `json:"is_public"`
	IsCrypto        bool             `json:"is_crypto"`
	CryptoCurrency  CryptoCurrency   `json:"crypto_currency,omitempty"`
	EventIDs        []string         `json:"event_ids"`
}

// Build produces the submission for a validated draft. It never fails: its
// input is already proven valid, and it is side-effect free, so calling it
// twice on the same value yields identical submissions.
//
// The timestamps use the literal concatenation rule {date}T{time}:00 with no
// time zone conversion, so the wall-clock reading equals the user's entry
// exactly.
func Build(v Validated) Submission {
	d := v.Draft()

	s := Submission{
		Name:            d.Name,
		Description:     d.Description,
		Start:           d.StartDate + "T" + d.StartTime + ":00",
		End:             d.EndDate + "T" + d.EndTime + ":00",
		EntryPrice:      d.EntryPrice,
		MaxParticipants: d.MaxParticipants,
		Distribution:    d.Distribution,
		FirstPlacePct:   d.FirstPlacePct,
		SecondPlacePct:  d.SecondPlacePct,
		ThirdPlacePct:   d.ThirdPlacePct,
		IsPublic:        d.IsPublic,
		IsCrypto:        d.IsCrypto,
		EventIDs:        append([]string(nil), d.EventIDs...),
	}

	// A stale currency from a toggled-off crypto switch must not survive
	// into the submission.
	if d.IsCrypto {
		s.CryptoCurrency = d.CryptoCurrency
	}

	// Zero already means "no cap"; negative values cannot pass validation.
	if d.MaxParticipants <= 0 {
		s.MaxParticipants = 0
	}

	return s
}
