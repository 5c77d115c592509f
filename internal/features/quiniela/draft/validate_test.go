package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

func validDraft() Draft {
	d := New()
	d.Name = "Cup A"
	d.StartDate = "2099-01-01"
	d.StartTime = "09:00"
	d.EndDate = "2099-01-02"
	d.EndTime = "18:00"
	d.EntryPrice = 10
	d.SetDistribution(DistributionTop3)
	d.EventIDs = []string{"7"}
	return d
}

func TestValidate_ValidDraft(t *testing.T) {
	v, errs := Validate(validDraft(), testNow)

	require.Empty(t, errs)
	assert.Equal(t, validDraft(), v.Draft())
}

func TestValidate_DoesNotMutate(t *testing.T) {
	d := validDraft()
	before := d

	_, errs := Validate(d, testNow)

	require.Empty(t, errs)
	assert.Equal(t, before, d)
}

func TestValidate_Name(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantKind Kind
	}{
		{"missing", "", KindMissingField},
		{"too short", "ab", KindOutOfRange},
		{"too long", string(make([]byte, 101)), KindOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Name = tt.value

			_, errs := Validate(d, testNow)

			require.Len(t, errs, 1)
			assert.Equal(t, FieldName, errs[0].Field)
			assert.Equal(t, tt.wantKind, errs[0].Kind)
		})
	}
}

func TestValidate_NameBoundaries(t *testing.T) {
	for _, name := range []string{"abc", string(make([]byte, 100))} {
		d := validDraft()
		d.Name = name

		_, errs := Validate(d, testNow)

		assert.Empty(t, errs)
	}
}

func TestValidate_DescriptionTooLong(t *testing.T) {
	d := validDraft()
	d.Description = string(make([]byte, 501))

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldDescription, errs[0].Field)
	assert.Equal(t, KindOutOfRange, errs[0].Kind)
}

func TestValidate_TimeFormat(t *testing.T) {
	bad := []string{"9:00", "24:00", "12:60", "12-30", "noon", "12:3"}
	for _, clock := range bad {
		d := validDraft()
		d.StartTime = clock

		_, errs := Validate(d, testNow)

		fe, ok := errs.ByField(FieldStartTime)
		require.True(t, ok, "expected error for %q", clock)
		assert.Equal(t, KindFormatMismatch, fe.Kind)
	}

	good := []string{"00:00", "09:30", "23:59"}
	for _, clock := range good {
		d := validDraft()
		d.StartTime = clock

		_, errs := Validate(d, testNow)

		_, ok := errs.ByField(FieldStartTime)
		assert.False(t, ok, "unexpected error for %q", clock)
	}
}

func TestValidate_StartDateInPast(t *testing.T) {
	d := validDraft()
	d.StartDate = "2025-05-31"

	_, errs := Validate(d, testNow)

	fe, ok := errs.ByField(FieldStartDate)
	require.True(t, ok)
	assert.Equal(t, KindTemporalOrdering, fe.Kind)
}

func TestValidate_StartInstantMustBeFuture(t *testing.T) {
	// now is 2025-06-01T10:00; same-day 09:00 is in the past even though
	// the date itself passes the date-only check. The error lands on the
	// time control, not the date.
	d := validDraft()
	d.StartDate = "2025-06-01"
	d.StartTime = "09:00"
	d.EndDate = "2025-06-02"

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldStartTime, errs[0].Field)
	assert.Equal(t, KindTemporalOrdering, errs[0].Kind)

	d.StartTime = "11:00"
	_, errs = Validate(d, testNow)
	assert.Empty(t, errs)
}

func TestValidate_StartEqualToNowFails(t *testing.T) {
	d := validDraft()
	d.StartDate = "2025-06-01"
	d.StartTime = "10:00"
	d.EndDate = "2025-06-02"

	_, errs := Validate(d, testNow)

	fe, ok := errs.ByField(FieldStartTime)
	require.True(t, ok)
	assert.Equal(t, KindTemporalOrdering, fe.Kind)
}

func TestValidate_EndBeforeStart(t *testing.T) {
	d := validDraft()
	d.StartDate = "2025-06-01"
	d.StartTime = "11:00"
	d.EndDate = "2025-06-01"
	d.EndTime = "10:00"

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldEndTime, errs[0].Field)
	assert.Equal(t, KindTemporalOrdering, errs[0].Kind)
}

func TestValidate_EndEqualToStartFails(t *testing.T) {
	d := validDraft()
	d.EndDate = d.StartDate
	d.EndTime = d.StartTime

	_, errs := Validate(d, testNow)

	fe, ok := errs.ByField(FieldEndTime)
	require.True(t, ok)
	assert.Equal(t, KindTemporalOrdering, fe.Kind)
}

func TestValidate_EndDateBeforeStartDate(t *testing.T) {
	d := validDraft()
	d.EndDate = "2098-12-31"

	_, errs := Validate(d, testNow)

	fe, ok := errs.ByField(FieldEndDate)
	require.True(t, ok)
	assert.Equal(t, KindTemporalOrdering, fe.Kind)
}

func TestValidate_MissingDateSkipsInstantChecks(t *testing.T) {
	// A missing date cannot be combined with a time, so only the
	// per-field error must surface.
	d := validDraft()
	d.StartDate = ""

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldStartDate, errs[0].Field)
	assert.Equal(t, KindMissingField, errs[0].Kind)
}

func TestValidate_EntryPrice(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		wantKind Kind
	}{
		{"missing", 0, KindMissingField},
		{"below minimum", 0.005, KindOutOfRange},
		{"negative", -1, KindOutOfRange},
		{"above maximum", 10000.01, KindOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.EntryPrice = tt.value

			_, errs := Validate(d, testNow)

			require.Len(t, errs, 1)
			assert.Equal(t, FieldEntryPrice, errs[0].Field)
			assert.Equal(t, tt.wantKind, errs[0].Kind)
		})
	}

	for _, price := range []float64{0.01, 10000.00} {
		d := validDraft()
		d.EntryPrice = price

		_, errs := Validate(d, testNow)

		assert.Empty(t, errs)
	}
}

func TestValidate_MaxParticipants(t *testing.T) {
	for _, bad := range []int{1, 1001, -5} {
		d := validDraft()
		d.MaxParticipants = bad

		_, errs := Validate(d, testNow)

		require.Len(t, errs, 1, "value %d", bad)
		assert.Equal(t, FieldMaxParticipants, errs[0].Field)
		assert.Equal(t, KindOutOfRange, errs[0].Kind)
	}

	// 0 means no cap and is always acceptable
	for _, good := range []int{0, 2, 1000} {
		d := validDraft()
		d.MaxParticipants = good

		_, errs := Validate(d, testNow)

		assert.Empty(t, errs, "value %d", good)
	}
}

func TestValidate_DistributionType(t *testing.T) {
	d := validDraft()
	d.Distribution = ""

	_, errs := Validate(d, testNow)
	require.Len(t, errs, 1)
	assert.Equal(t, KindMissingField, errs[0].Kind)

	d.Distribution = "TOP_5"
	_, errs = Validate(d, testNow)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldDistribution, errs[0].Field)
	assert.Equal(t, KindFormatMismatch, errs[0].Kind)
}

func TestValidate_PercentageSum(t *testing.T) {
	for _, mode := range []DistributionType{DistributionTop3, DistributionPercentage} {
		t.Run(string(mode), func(t *testing.T) {
			d := validDraft()
			d.Distribution = mode
			d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 70, 20, 10

			_, errs := Validate(d, testNow)
			assert.Empty(t, errs)

			d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 70, 20, 5
			_, errs = Validate(d, testNow)
			require.Len(t, errs, 1)
			assert.Equal(t, FieldPercentages, errs[0].Field)
			assert.Equal(t, KindDistributionSum, errs[0].Kind)
			assert.Contains(t, errs[0].Message, "95")
		})
	}
}

func TestValidate_PercentageSumMessageHasExactSum(t *testing.T) {
	d := validDraft()
	d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 50, 30, 30

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "110")
	assert.NotContains(t, errs[0].Message, "110.00")
}

func TestValidate_WinnerTakesAllIgnoresSum(t *testing.T) {
	// Any percentage combination is acceptable under WINNER_TAKES_ALL,
	// including ones that do not sum to 100.
	d := validDraft()
	d.Distribution = DistributionWinnerTakesAll
	d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 40, 40, 40

	_, errs := Validate(d, testNow)

	assert.Empty(t, errs)
	assert.False(t, errs.HasKind(KindDistributionSum))
}

func TestValidate_PercentageOutOfRange(t *testing.T) {
	d := validDraft()
	d.SecondPlacePct = 130
	d.ThirdPlacePct = -30

	_, errs := Validate(d, testNow)

	// Both range errors surface; the sum check is skipped when a
	// referenced field already failed.
	require.Len(t, errs, 2)
	assert.Equal(t, FieldSecondPlacePct, errs[0].Field)
	assert.Equal(t, FieldThirdPlacePct, errs[1].Field)
	assert.False(t, errs.HasKind(KindDistributionSum))
}

func TestValidate_CryptoCurrencyRequired(t *testing.T) {
	d := validDraft()
	d.IsCrypto = true

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldCryptoCurrency, errs[0].Field)
	assert.Equal(t, KindConditionalRequirement, errs[0].Kind)

	d.CryptoCurrency = CryptoETH
	_, errs = Validate(d, testNow)
	assert.Empty(t, errs)
}

func TestValidate_CryptoCurrencyUnknown(t *testing.T) {
	d := validDraft()
	d.IsCrypto = true
	d.CryptoCurrency = "DOGE"

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldCryptoCurrency, errs[0].Field)
	assert.Equal(t, KindFormatMismatch, errs[0].Kind)
}

func TestValidate_CryptoCurrencyUnconstrainedWhenDisabled(t *testing.T) {
	// A stale value left behind after toggling crypto off is not an error;
	// the builder strips it.
	d := validDraft()
	d.IsCrypto = false
	d.CryptoCurrency = "DOGE"

	_, errs := Validate(d, testNow)

	assert.Empty(t, errs)
}

func TestValidate_EventSelection(t *testing.T) {
	d := validDraft()
	d.EventIDs = nil

	_, errs := Validate(d, testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldEventIDs, errs[0].Field)
	assert.Equal(t, KindEmptySelection, errs[0].Kind)

	d.EventIDs = []string{"7"}
	_, errs = Validate(d, testNow)
	assert.Empty(t, errs)
}

func TestValidate_CollectsAllErrorsInOrder(t *testing.T) {
	d := Draft{
		StartTime:    "25:00",
		EndDate:      "2099-01-02",
		EndTime:      "18:00",
		Distribution: DistributionTop3,
		IsCrypto:     true,
	}

	_, errs := Validate(d, testNow)

	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{
		FieldName,
		FieldStartDate,
		FieldStartTime,
		FieldEntryPrice,
		FieldEventIDs,
		FieldPercentages,
		FieldCryptoCurrency,
	}, fields)
}

func TestValidate_Deterministic(t *testing.T) {
	d := validDraft()
	d.Name = ""
	d.IsCrypto = true

	_, first := Validate(d, testNow)
	_, second := Validate(d, testNow)

	assert.Equal(t, first, second)
}
