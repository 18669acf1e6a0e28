package domain

// BookingDetails is a client-held draft booking. It has no server identity
// until it becomes a ride, either by a direct insert or after a verified
// payment.
type BookingDetails struct {
	PickupLocation  string
	DropoffLocation string
	Date            string
	Time            string
	VehicleType     VehicleType
	Price           float64
}

// Complete reports whether every field required for checkout is present.
func (b BookingDetails) Complete() bool {
	return b.PickupLocation != "" &&
		b.DropoffLocation != "" &&
		b.Date != "" &&
		b.Time != "" &&
		b.VehicleType != "" &&
		b.Price > 0
}

// FareBreakdown is the result of a fare calculation.
type FareBreakdown struct {
	BaseFare     float64
	DistanceFare float64
	ServiceFee   float64
	Total        float64
}
