package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	d := New()

	assert.Equal(t, "09:00", d.StartTime)
	assert.Equal(t, "18:00", d.EndTime)
	assert.True(t, d.IsPublic)
	assert.False(t, d.IsCrypto)
	assert.Equal(t, DistributionWinnerTakesAll, d.Distribution)
	assert.Equal(t, 100.0, d.FirstPlacePct)
	assert.Zero(t, d.SecondPlacePct)
	assert.Zero(t, d.ThirdPlacePct)
}

func TestSetDistribution_ResetsAllPercentages(t *testing.T) {
	tests := []struct {
		mode                 DistributionType
		first, second, third float64
	}{
		{DistributionWinnerTakesAll, 100, 0, 0},
		{DistributionTop3, 50, 30, 20},
		{DistributionPercentage, 60, 25, 15},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			d := New()
			// Prior values must never leak through a mode switch.
			d.FirstPlacePct, d.SecondPlacePct, d.ThirdPlacePct = 1, 2, 3

			d.SetDistribution(tt.mode)

			assert.Equal(t, tt.mode, d.Distribution)
			assert.Equal(t, tt.first, d.FirstPlacePct)
			assert.Equal(t, tt.second, d.SecondPlacePct)
			assert.Equal(t, tt.third, d.ThirdPlacePct)
		})
	}
}

func TestDistributionType_IsValid(t *testing.T) {
	assert.True(t, DistributionTop3.IsValid())
	assert.False(t, DistributionType("TOP_5").IsValid())
	assert.False(t, DistributionType("").IsValid())
}

func TestCryptoCurrency_IsValid(t *testing.T) {
	for _, c := range []CryptoCurrency{CryptoBTC, CryptoETH, CryptoSOL, CryptoADA, CryptoDOT} {
		assert.True(t, c.IsValid())
	}
	assert.False(t, CryptoCurrency("DOGE").IsValid())
}
