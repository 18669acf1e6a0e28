package tests

import (
	"errors"
	"math"
	"testing"

	"swiftride/internal/domain"
	"swiftride/internal/pricing"
)

// ──────────────────────────────────────────────
// 1. FARE CALCULATION
// ──────────────────────────────────────────────

func TestPricing_FormulaHoldsForAllVehicleTypes(t *testing.T) {
	t.Parallel()

	vehicles := []domain.VehicleType{
		domain.VehicleEconomy,
		domain.VehicleStandard,
		domain.VehiclePremium,
	}
	distances := []float64{0, 1, 5.5, 10, 42.3}

	for _, v := range vehicles {
		for _, d := range distances {
			rate, ok := pricing.RateFor(v)
			if !ok {
				t.Fatalf("no rate for vehicle type %s", v)
			}

			breakdown, err := pricing.Calculate(v, d)
			if err != nil {
				t.Fatalf("unexpected error for %s at %gkm: %v", v, d, err)
			}

			if breakdown.BaseFare != rate.BasePrice {
				t.Errorf("%s: expected base fare %g, got %g", v, rate.BasePrice, breakdown.BaseFare)
			}
			if breakdown.DistanceFare != rate.PricePerKm*d {
				t.Errorf("%s at %gkm: expected distance fare %g, got %g",
					v, d, rate.PricePerKm*d, breakdown.DistanceFare)
			}

			wantFee := math.Round(0.10 * rate.BasePrice)
			if breakdown.ServiceFee != wantFee {
				t.Errorf("%s: expected service fee %g, got %g", v, wantFee, breakdown.ServiceFee)
			}

			wantTotal := breakdown.BaseFare + breakdown.DistanceFare + breakdown.ServiceFee
			if wantTotal < rate.MinPrice {
				wantTotal = rate.MinPrice
			}
			if breakdown.Total != wantTotal {
				t.Errorf("%s at %gkm: expected total %g, got %g", v, d, wantTotal, breakdown.Total)
			}
		}
	}
}

func TestPricing_KnownFaresAtDefaultDistance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		vehicle domain.VehicleType
		want    domain.FareBreakdown
	}{
		{
			name:    "economy",
			vehicle: domain.VehicleEconomy,
			want:    domain.FareBreakdown{BaseFare: 15, DistanceFare: 12, ServiceFee: 2, Total: 29},
		},
		{
			name:    "standard",
			vehicle: domain.VehicleStandard,
			want:    domain.FareBreakdown{BaseFare: 25, DistanceFare: 18, ServiceFee: 3, Total: 46},
		},
		{
			name:    "premium",
			vehicle: domain.VehiclePremium,
			want:    domain.FareBreakdown{BaseFare: 40, DistanceFare: 25, ServiceFee: 4, Total: 69},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pricing.Estimate(tc.vehicle)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPricing_IsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := pricing.Calculate(domain.VehiclePremium, 17.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := pricing.Calculate(domain.VehiclePremium, 17.3)
		if err != nil {
			t.Fatalf("unexpected error on repeat %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("repeat %d differs: expected %+v, got %+v", i, first, again)
		}
	}
}

func TestPricing_UnknownVehicleType_Rejected(t *testing.T) {
	t.Parallel()

	_, err := pricing.Calculate(domain.VehicleType("superbike"), 10)
	if !errors.Is(err, pricing.ErrUnknownVehicleType) {
		t.Errorf("expected ErrUnknownVehicleType, got %v", err)
	}
}

func TestPricing_NegativeDistance_Rejected(t *testing.T) {
	t.Parallel()

	_, err := pricing.Calculate(domain.VehicleEconomy, -1)
	if !errors.Is(err, pricing.ErrInvalidDistance) {
		t.Errorf("expected ErrInvalidDistance, got %v", err)
	}
}

func TestPricing_ZeroDistance_TotalNeverBelowMinimum(t *testing.T) {
	t.Parallel()

	for _, v := range []domain.VehicleType{
		domain.VehicleEconomy,
		domain.VehicleStandard,
		domain.VehiclePremium,
	} {
		rate, _ := pricing.RateFor(v)

		breakdown, err := pricing.Calculate(v, 0)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", v, err)
		}
		if breakdown.Total < rate.MinPrice {
			t.Errorf("%s: total %g fell below minimum %g", v, breakdown.Total, rate.MinPrice)
		}
	}
}
