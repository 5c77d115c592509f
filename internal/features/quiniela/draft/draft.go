// Package draft holds the quiniela draft validation and normalization core.
// Everything in it is pure: the current instant is injected, nothing touches
// storage or the network.
package draft

// DistributionType represents the prize distribution mode
type DistributionType string

const (
	DistributionWinnerTakesAll DistributionType = "WINNER_TAKES_ALL"
	DistributionTop3           DistributionType = "TOP_3"
	DistributionPercentage     DistributionType = "PERCENTAGE"
)

// IsValid reports whether t is one of the known distribution modes
func (t DistributionType) IsValid() bool {
	switch t {
	case DistributionWinnerTakesAll, DistributionTop3, DistributionPercentage:
		return true
	}
	return false
}

// CryptoCurrency represents a supported payment currency
type CryptoCurrency string

const (
	CryptoBTC CryptoCurrency = "BTC"
	CryptoETH CryptoCurrency = "ETH"
	CryptoSOL CryptoCurrency = "SOL"
	CryptoADA CryptoCurrency = "ADA"
	CryptoDOT CryptoCurrency = "DOT"
)

// IsValid reports whether c is one of the supported currencies
func (c CryptoCurrency) IsValid() bool {
	switch c {
	case CryptoBTC, CryptoETH, CryptoSOL, CryptoADA, CryptoDOT:
		return true
	}
	return false
}

const (
	MinNameLength        = 3
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MinEntryPrice        = 0.01
	MaxEntryPrice        = 10000.00
	MinParticipants      = 2
	MaxParticipants      = 1000

	DefaultStartTime = "09:00"
	DefaultEndTime   = "18:00"
)

// Draft is the mutable, user-edited representation of a quiniela before
// creation. Dates are calendar dates (YYYY-MM-DD) and times are 24-hour
// HH:MM strings, exactly as the form edits them; they are only combined
// into instants during validation and submission building.
type Draft struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	StartDate       string           `json:"start_date"`
	StartTime       string           `json:"start_time"`
	EndDate         string           `json:"end_date"`
	EndTime         string           `json:"end_time"`
	EntryPrice      float64          `json:"entry_price"`
	MaxParticipants int              `json:"max_participants"` // 0 = no cap
	Distribution    DistributionType `json:"distribution_type"`
	FirstPlacePct   float64          `json:"first_place_pct"`
	SecondPlacePct  float64          `json:"second_place_pct"`
	ThirdPlacePct   float64          `json:"third_place_pct"`
	IsPublic        bool             `json:"is_public"`
	IsCrypto        bool             `json:"is_crypto"`
	CryptoCurrency  CryptoCurrency   `json:"crypto_currency,omitempty"`
	EventIDs        []string         `json:"event_ids"`
}

// New returns a draft populated with the form-open defaults.
func New() Draft {
	d := Draft{
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
		IsPublic:  true,
	}
	d.SetDistribution(DistributionWinnerTakesAll)
	return d
}

// DistributionDefaults returns the canonical percentage split for a mode.
func DistributionDefaults(t DistributionType) (first, second, third float64) {
	switch t {
	case DistributionTop3:
		return 50, 30, 20
	case DistributionPercentage:
		return 60, 25, 15
	default:
		return 100, 0, 0
	}
}

// SetDistribution switches the distribution mode and resets all three
// percentage fields to the mode's canonical defaults. The three fields are
// always overwritten together; a partial overwrite is not a valid state
// transition.
func (d *Draft) SetDistribution(t DistributionType) {
	d.Distribution = t
	d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = DistributionDefaults(t)
}

// PercentageSum returns the sum of the three percentage fields. Absent
// fields are zero-valued, so they count as 0.
func (d Draft) PercentageSum() float64 {
	return d.FirstPlacePct + d.SecondPlacePct + d.ThirdPlacePct
}

// RequiresPercentageSum reports whether the current distribution mode
// constrains the percentage fields to sum to 100.
func (d Draft) RequiresPercentageSum() bool {
	return d.Distribution == DistributionTop3 || d.Distribution == DistributionPercentage
}
