// Package pricing computes fares from a fixed per-vehicle rate table.
package pricing

import (
	"errors"
	"math"

	"swiftride/internal/domain"
)

// DefaultDistanceKm is assumed when the caller does not know the distance.
const DefaultDistanceKm = 10.0

// serviceFeeRate is applied to the base fare and rounded to the nearest
// currency unit.
const serviceFeeRate = 0.10

var (
	// ErrUnknownVehicleType is returned for vehicle types outside the rate table.
	ErrUnknownVehicleType = errors.New("unknown vehicle type")

	// ErrInvalidDistance is returned for negative distances.
	ErrInvalidDistance = errors.New("invalid distance")
)

// Rate holds the pricing tuple for one vehicle type.
type Rate struct {
	BasePrice  float64
	PricePerKm float64
	MinPrice   float64
}

// rates is the fixed rate table. MinPrice equals BasePrice for every type, so
// the minimum-price clamp never lowers a computed total below the base fare.
var rates = map[domain.VehicleType]Rate{
	domain.VehicleEconomy:  {BasePrice: 15, PricePerKm: 1.2, MinPrice: 15},
	domain.VehicleStandard: {BasePrice: 25, PricePerKm: 1.8, MinPrice: 25},
	domain.VehiclePremium:  {BasePrice: 40, PricePerKm: 2.5, MinPrice: 40},
}

// RateFor returns the rate tuple for a vehicle type.
func RateFor(v domain.VehicleType) (Rate, bool) {
	r, ok := rates[v]
	return r, ok
}

// Calculate returns the fare breakdown for a vehicle type over a distance in
// kilometers. The service fee is 10% of the base fare rounded half-up; base
// and distance fares keep full precision until display.
func Calculate(v domain.VehicleType, distanceKm float64) (domain.FareBreakdown, error) {
	rate, ok := rates[v]
	if !ok {
		return domain.FareBreakdown{}, ErrUnknownVehicleType
	}
	if distanceKm < 0 {
		return domain.FareBreakdown{}, ErrInvalidDistance
	}

	breakdown := domain.FareBreakdown{
		BaseFare:     rate.BasePrice,
		DistanceFare: rate.PricePerKm * distanceKm,
		ServiceFee:   math.Round(serviceFeeRate * rate.BasePrice),
	}
	breakdown.Total = breakdown.BaseFare + breakdown.DistanceFare + breakdown.ServiceFee
	if breakdown.Total < rate.MinPrice {
		breakdown.Total = rate.MinPrice
	}
	return breakdown, nil
}

// Estimate calculates a fare with the default distance, for bookings where the
// route length is unknown.
func Estimate(v domain.VehicleType) (domain.FareBreakdown, error) {
	return Calculate(v, DefaultDistanceKm)
}
