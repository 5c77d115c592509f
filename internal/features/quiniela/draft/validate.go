package draft

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a validation failure
type Kind string

const (
	KindMissingField           Kind = "MISSING_FIELD"
	KindOutOfRange             Kind = "OUT_OF_RANGE"
	KindFormatMismatch         Kind = "FORMAT_MISMATCH"
	KindTemporalOrdering       Kind = "TEMPORAL_ORDERING_VIOLATION"
	KindDistributionSum        Kind = "DISTRIBUTION_SUM_MISMATCH"
	KindConditionalRequirement Kind = "CONDITIONAL_REQUIREMENT_VIOLATION"
	KindEmptySelection         Kind = "EMPTY_SELECTION"
)

// Field identifiers used in validation errors. They match the draft's JSON
// field names so the UI can attach each error to its form control.
// FieldPercentages is synthetic: the sum check spans three fields.
const (
	FieldName            = "name"
	FieldDescription     = "description"
	FieldStartDate       = "start_date"
	FieldStartTime       = "start_time"
	FieldEndDate         = "end_date"
	FieldEndTime         = "end_time"
	FieldEntryPrice      = "entry_price"
	FieldMaxParticipants = "max_participants"
	FieldDistribution    = "distribution_type"
	FieldFirstPlacePct   = "first_place_pct"
	FieldSecondPlacePct  = "second_place_pct"
	FieldThirdPlacePct   = "third_place_pct"
	FieldCryptoCurrency  = "crypto_currency"
	FieldEventIDs        = "event_ids"
	FieldPercentages     = "percentages"
)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is the ordered collection of failures from one validation pass.
// The order is deterministic: per-field checks in declaration order, then
// the cross-field checks.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField returns the first error attached to the given field, if any.
func (e Errors) ByField(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// HasKind reports whether any collected error has the given kind.
func (e Errors) HasKind(k Kind) bool {
	for _, fe := range e {
		if fe.Kind == k {
			return true
		}
	}
	return false
}

// Validated is the proof that a draft passed Validate. It carries an
// unexported copy of the draft so a Validated value cannot be constructed
// from an unchecked one.
type Validated struct {
	d Draft
}

// Draft returns the validated draft. Validation never mutates values, so
// this is structurally identical to the input of Validate.
func (v Validated) Draft() Draft {
	return v.d
}

var clockRegex = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// Validate runs the full rule set against a draft. The current instant is
// injected so the result is deterministic: calling Validate repeatedly with
// the same draft and the same now yields identical results.
//
// All applicable errors are collected in one pass; nothing short-circuits
// after the first failure. Cross-field checks only run when every field
// they reference passed its own check (a missing date cannot be combined
// with a time).
func Validate(d Draft, now time.Time) (Validated, Errors) {
	var errs Errors
	fail := func(field string, kind Kind, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	// name
	if d.Name == "" {
		fail(FieldName, KindMissingField, "name is required")
	} else if len(d.Name) < MinNameLength || len(d.Name) > MaxNameLength {
		fail(FieldName, KindOutOfRange, "name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}

	// description
	if len(d.Description) > MaxDescriptionLength {
		fail(FieldDescription, KindOutOfRange, "description cannot exceed %d characters", MaxDescriptionLength)
	}

	// start date
	var startDate time.Time
	startDateOK := false
	if d.StartDate == "" {
		fail(FieldStartDate, KindMissingField, "start date is required")
	} else if parsed, err := parseDate(d.StartDate); err != nil {
		fail(FieldStartDate, KindFormatMismatch, "start date must be a valid YYYY-MM-DD date")
	} else if parsed.Before(dateOf(now)) {
		fail(FieldStartDate, KindTemporalOrdering, "start date cannot be in the past")
	} else {
		startDate, startDateOK = parsed, true
	}

	// start time
	startTimeOK := false
	if d.StartTime == "" {
		fail(FieldStartTime, KindMissingField, "start time is required")
	} else if !clockRegex.MatchString(d.StartTime) {
		fail(FieldStartTime, KindFormatMismatch, "start time must be in HH:MM format")
	} else {
		startTimeOK = true
	}

	// end date
	endDateOK := false
	if d.EndDate == "" {
		fail(FieldEndDate, KindMissingField, "end date is required")
	} else if parsed, err := parseDate(d.EndDate); err != nil {
		fail(FieldEndDate, KindFormatMismatch, "end date must be a valid YYYY-MM-DD date")
	} else if startDateOK && parsed.Before(startDate) {
		fail(FieldEndDate, KindTemporalOrdering, "end date cannot be before start date")
	} else {
		endDateOK = true
	}

	// end time
	endTimeOK := false
	if d.EndTime == "" {
		fail(FieldEndTime, KindMissingField, "end time is required")
	} else if !clockRegex.MatchString(d.EndTime) {
		fail(FieldEndTime, KindFormatMismatch, "end time must be in HH:MM format")
	} else {
		endTimeOK = true
	}

	// entry price
	if d.EntryPrice == 0 {
		fail(FieldEntryPrice, KindMissingField, "entry price is required")
	} else if d.EntryPrice < MinEntryPrice || d.EntryPrice > MaxEntryPrice {
		fail(FieldEntryPrice, KindOutOfRange, "entry price must be between %.2f and %.2f", MinEntryPrice, MaxEntryPrice)
	}

	// max participants, 0 means no cap
	if d.MaxParticipants != 0 && (d.MaxParticipants < MinParticipants || d.MaxParticipants > MaxParticipants) {
		fail(FieldMaxParticipants, KindOutOfRange, "max participants must be between %d and %d", MinParticipants, MaxParticipants)
	}

	// distribution type
	distributionOK := false
	if d.Distribution == "" {
		fail(FieldDistribution, KindMissingField, "distribution type is required")
	} else if !d.Distribution.IsValid() {
		fail(FieldDistribution, KindFormatMismatch, "distribution type must be one of %s, %s or %s",
			DistributionWinnerTakesAll, DistributionTop3, DistributionPercentage)
	} else {
		distributionOK = true
	}

	// percentage fields
	percentagesOK := true
	for _, p := range []struct {
		field string
		value float64
	}{
		{FieldFirstPlacePct, d.FirstPlacePct},
		{FieldSecondPlacePct, d.SecondPlacePct},
		{FieldThirdPlacePct, d.ThirdPlacePct},
	} {
		if p.value < 0 || p.value > 100 {
			fail(p.field, KindOutOfRange, "percentage must be between 0 and 100")
			percentagesOK = false
		}
	}

	// crypto currency value, when one is set while crypto is enabled
	if d.IsCrypto && d.CryptoCurrency != "" && !d.CryptoCurrency.IsValid() {
		fail(FieldCryptoCurrency, KindFormatMismatch, "crypto currency must be one of %s, %s, %s, %s or %s",
			CryptoBTC, CryptoETH, CryptoSOL, CryptoADA, CryptoDOT)
	}

	// events
	if len(d.EventIDs) == 0 {
		fail(FieldEventIDs, KindEmptySelection, "at least one event must be selected")
	}

	// Cross-field: temporal ordering. Futurity and ordering violations are
	// reported on the time controls even when the date portion is at fault;
	// the date-only pre-checks above cover the common date mistakes.
	var start time.Time
	startInstantOK := false
	if startDateOK && startTimeOK {
		if combined, err := combine(d.StartDate, d.StartTime); err == nil {
			start = combined
			startInstantOK = true
			if !start.After(now) {
				fail(FieldStartTime, KindTemporalOrdering, "start must be in the future")
			}
		}
	}
	if startInstantOK && endDateOK && endTimeOK {
		if end, err := combine(d.EndDate, d.EndTime); err == nil && !end.After(start) {
			fail(FieldEndTime, KindTemporalOrdering, "end must be after start")
		}
	}

	// Cross-field: percentage sum, only under modes that constrain it.
	if distributionOK && percentagesOK && d.RequiresPercentageSum() {
		if sum := d.PercentageSum(); sum != 100 {
			fail(FieldPercentages, KindDistributionSum,
				"prize percentages must sum to 100, got %s", strconv.FormatFloat(sum, 'f', -1, 64))
		}
	}

	// Cross-field: crypto currency is required while crypto payment is
	// enabled. The builder handles the nulling on the other branch.
	if d.IsCrypto && d.CryptoCurrency == "" {
		fail(FieldCryptoCurrency, KindConditionalRequirement, "crypto currency is required when crypto payment is enabled")
	}

	if len(errs) > 0 {
		return Validated{}, errs
	}
	return Validated{d: d}, nil
}
