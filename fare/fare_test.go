package fare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
)

func TestFare_Default(t *testing.T) {
	c := fare.Default()
	cases := []struct {
		name     string
		distance float64
		zone     int
		want     int
	}{
		{"zero", 0, 0, 5},
		{"ten km zone one", 10, 1, 16},       // 5 + 8 + 3
		{"half rounds up", 3.125, 1, 11},     // 5 + 2.5 + 3 = 10.5
		{"below half rounds down", 3, 1, 10}, // 5 + 2.4 + 3 = 10.4
		{"zone three", 20, 3, 30},            // 5 + 16 + 9
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Fare(tc.distance, tc.zone))
		})
	}
}

func TestBreakdown(t *testing.T) {
	b := fare.Default().Breakdown(10, 2)
	assert.Equal(t, 5.0, b.Base)
	assert.InDelta(t, 8.0, b.Distance, 1e-9)
	assert.Equal(t, 6.0, b.Zone)
	assert.Equal(t, 19, b.Total)
}

func TestRoundTrip(t *testing.T) {
	assert.Equal(t, 27, fare.Default().RoundTrip(10, 1)) // 2*16 - 5
}

func TestCategory(t *testing.T) {
	assert.Equal(t, fare.Economy, fare.Category(15))
	assert.Equal(t, fare.Standard, fare.Category(16))
	assert.Equal(t, fare.Standard, fare.Category(30))
	assert.Equal(t, fare.Premium, fare.Category(50))
	assert.Equal(t, fare.LongDistance, fare.Category(51))
}

func TestValidate(t *testing.T) {
	require.NoError(t, fare.Default().Validate())
	assert.ErrorIs(t, fare.Calculator{Base: -1}.Validate(), fare.ErrInvalidTariff)
	assert.ErrorIs(t, fare.Calculator{PerKm: math.NaN()}.Validate(), fare.ErrInvalidTariff)
	assert.ErrorIs(t, fare.Calculator{ZoneSurcharge: math.Inf(1)}.Validate(), fare.ErrInvalidTariff)
}

func TestFareIsAFareFunc(t *testing.T) {
	var f dijkstra.FareFunc = fare.Default().Fare
	assert.Equal(t, 16, f(10, 1))
}
