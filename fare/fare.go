package fare

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTariff is returned by Validate for negative or non-finite rates.
var ErrInvalidTariff = errors.New("fare: invalid tariff")

// Tariff defaults.
const (
	DefaultBase          = 5.0
	DefaultPerKm         = 0.8
	DefaultZoneSurcharge = 3.0

	// ReturnDiscount is subtracted from twice the single fare.
	ReturnDiscount = 5
)

// Fare bands, by upper bound inclusive.
const (
	Economy      = "Economy"
	Standard     = "Standard"
	Premium      = "Premium"
	LongDistance = "Long Distance"
)

// Calculator holds the rates of a linear tariff.
type Calculator struct {
	Base          float64
	PerKm         float64
	ZoneSurcharge float64
}

// Breakdown itemises one fare.
type Breakdown struct {
	Base     float64
	Distance float64
	Zone     float64
	Total    int
}

// Default returns the standard tariff.
func Default() Calculator {
	return Calculator{Base: DefaultBase, PerKm: DefaultPerKm, ZoneSurcharge: DefaultZoneSurcharge}
}

// Validate rejects negative, NaN or infinite rates.
func (c Calculator) Validate() error {
	rates := []struct {
		name string
		v    float64
	}{{"base", c.Base}, {"per-km", c.PerKm}, {"zone surcharge", c.ZoneSurcharge}}
	for _, r := range rates {
		if r.v < 0 || math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidTariff, r.name, r.v)
		}
	}

	return nil
}

// Fare returns the single-journey fare.
func (c Calculator) Fare(distance float64, maxZone int) int {
	return c.Breakdown(distance, maxZone).Total
}

// Breakdown returns the components of the fare and their rounded total.
func (c Calculator) Breakdown(distance float64, maxZone int) Breakdown {
	b := Breakdown{
		Base:     c.Base,
		Distance: c.PerKm * distance,
		Zone:     c.ZoneSurcharge * float64(maxZone),
	}
	b.Total = roundHalfUp(b.Base + b.Distance + b.Zone)

	return b
}

// RoundTrip returns the discounted fare for going and coming back.
func (c Calculator) RoundTrip(distance float64, maxZone int) int {
	return 2*c.Fare(distance, maxZone) - ReturnDiscount
}

// Category names the band a fare falls into.
func Category(fare int) string {
	switch {
	case fare <= 15:
		return Economy
	case fare <= 30:
		return Standard
	case fare <= 50:
		return Premium
	default:
		return LongDistance
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
