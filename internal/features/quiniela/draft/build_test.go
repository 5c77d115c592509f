package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, d Draft) Validated {
	t.Helper()
	v, errs := Validate(d, testNow)
	require.Empty(t, errs)
	return v
}

func TestBuild_CombinesDateAndTime(t *testing.T) {
	s := Build(mustValidate(t, validDraft()))

	assert.Equal(t, "2099-01-01T09:00:00", s.Start)
	assert.Equal(t, "2099-01-02T18:00:00", s.End)
}

func TestBuild_PassesFieldsThrough(t *testing.T) {
	d := validDraft()
	d.Description = "weekend cup"
	d.MaxParticipants = 50
	d.IsPublic = false

	s := Build(mustValidate(t, d))

	assert.Equal(t, "Cup A", s.Name)
	assert.Equal(t, "weekend cup", s.Description)
	assert.Equal(t, 10.0, s.EntryPrice)
	assert.Equal(t, 50, s.MaxParticipants)
	assert.Equal(t, DistributionTop3, s.Distribution)
	assert.Equal(t, 50.0, s.FirstPlacePct)
	assert.Equal(t, 30.0, s.SecondPlacePct)
	assert.Equal(t, 20.0, s.ThirdPlacePct)
	assert.False(t, s.IsPublic)
	assert.Equal(t, []string{"7"}, s.EventIDs)
}

func TestBuild_StripsStaleCryptoCurrency(t *testing.T) {
	d := validDraft()
	d.IsCrypto = false
	d.CryptoCurrency = CryptoBTC

	s := Build(mustValidate(t, d))

	assert.False(t, s.IsCrypto)
	assert.Empty(t, s.CryptoCurrency)
}

func TestBuild_KeepsCryptoCurrencyWhenEnabled(t *testing.T) {
	d := validDraft()
	d.IsCrypto = true
	d.CryptoCurrency = CryptoSOL

	s := Build(mustValidate(t, d))

	assert.True(t, s.IsCrypto)
	assert.Equal(t, CryptoSOL, s.CryptoCurrency)
}

func TestBuild_NormalizesZeroCapToAbsent(t *testing.T) {
	d := validDraft()
	d.MaxParticipants = 0

	s := Build(mustValidate(t, d))
	assert.Zero(t, s.MaxParticipants)

	// omitempty drops the cap from the wire shape entirely
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "max_participants")
}

func TestBuild_Idempotent(t *testing.T) {
	v := mustValidate(t, validDraft())

	first, err := json.Marshal(Build(v))
	require.NoError(t, err)
	second, err := json.Marshal(Build(v))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_CopiesEventIDs(t *testing.T) {
	d := validDraft()
	d.EventIDs = []string{"7", "8"}

	s := Build(mustValidate(t, d))
	d.EventIDs[0] = "changed"

	assert.Equal(t, []string{"7", "8"}, s.EventIDs)
}

func TestValidateThenBuild_EndToEnd(t *testing.T) {
	d := Draft{
		Name:         "Cup A",
		StartDate:    "2099-01-01",
		StartTime:    "09:00",
		EndDate:      "2099-01-02",
		EndTime:      "18:00",
		EntryPrice:   10,
		Distribution: DistributionTop3,
	}
	d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 50, 30, 20
	d.EventIDs = []string{"7"}

	v, errs := Validate(d, testNow)
	require.Empty(t, errs)

	s := Build(v)
	assert.Equal(t, "2099-01-01T09:00:00", s.Start)
	assert.Equal(t, "2099-01-02T18:00:00", s.End)
}
