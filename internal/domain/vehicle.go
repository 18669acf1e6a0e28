package domain

import "strings"

// VehicleType represents the class of vehicle for a booking.
type VehicleType string

const (
	VehicleEconomy  VehicleType = "economy"
	VehicleStandard VehicleType = "standard"
	VehiclePremium  VehicleType = "premium"
)

// ParseVehicleType validates a raw vehicle type string.
func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(s) {
	case VehicleEconomy, VehicleStandard, VehiclePremium:
		return VehicleType(s), true
	default:
		return "", false
	}
}

// DisplayName returns the capitalized form used in checkout line items,
// e.g. "Standard".
func (v VehicleType) DisplayName() string {
	if v == "" {
		return ""
	}
	s := string(v)
	return strings.ToUpper(s[:1]) + s[1:]
}
