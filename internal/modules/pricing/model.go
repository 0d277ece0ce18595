// README: Quote parameters and price breakdown definitions.
package pricing

import "time"

type VanSize string

const (
	VanSmall  VanSize = "small"
	VanMedium VanSize = "medium"
	VanLarge  VanSize = "large"
	VanLuton  VanSize = "luton"
)

type FloorAccess string

const (
	FloorGround    FloorAccess = "ground"
	FloorFirst     FloorAccess = "firstFloor"
	FloorSecond    FloorAccess = "secondFloor"
	FloorThirdPlus FloorAccess = "thirdFloorPlus"
)

type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyPriority Urgency = "priority"
	UrgencyExpress  Urgency = "express"
)

// normalized maps unknown sizes to medium, matching the legacy behaviour of
// quoting an unrecognized van at the mid multiplier instead of failing.
func (v VanSize) normalized() VanSize {
	switch v {
	case VanSmall, VanMedium, VanLarge, VanLuton:
		return v
	}
	return VanMedium
}

func (f FloorAccess) normalized() FloorAccess {
	switch f {
	case FloorGround, FloorFirst, FloorSecond, FloorThirdPlus:
		return f
	}
	return FloorGround
}

func (u Urgency) normalized() Urgency {
	switch u {
	case UrgencyStandard, UrgencyPriority, UrgencyExpress:
		return u
	}
	return UrgencyStandard
}

// QuoteParams is the normalized input for one quote calculation. A value is
// built once per request and never mutated.
type QuoteParams struct {
	PickupAddress   string
	DeliveryAddress string
	DistanceMiles   float64
	VanSize         VanSize
	MoveDate        time.Time
	EstimatedHours  float64
	Helpers         int
	FloorAccess     FloorAccess
	LiftAvailable   bool
	Urgency         Urgency
	// DurationMinutes is the trip duration reported by the distance lookup.
	// When positive it takes precedence over EstimatedHours.
	DurationMinutes float64
}

// PriceBreakdown itemizes one computed quote. Every charge field is always
// present; a component that does not apply is zero, never absent.
type PriceBreakdown struct {
	DistanceCharge    float64 `json:"distanceCharge"`
	TimeCharge        float64 `json:"timeCharge"`
	HelpersFee        float64 `json:"helpersFee"`
	FloorAccessFee    float64 `json:"floorAccessFee"`
	PeakTimeSurcharge float64 `json:"peakTimeSurcharge"`
	UrgencySurcharge  float64 `json:"urgencySurcharge"`
	FuelCost          float64 `json:"fuelCost"`
	ReturnJourneyCost float64 `json:"returnJourneyCost"`
	CongestionCharge  float64 `json:"congestionCharge"`

	// TotalPrice is the sum of the nine charge components, pre-commission.
	TotalPrice  float64 `json:"totalPrice"`
	PlatformFee float64 `json:"platformFee"`
	VATAmount   float64 `json:"vatAmount"`
	// DriverShare is derived by subtraction so the split always reproduces
	// TotalPrice exactly.
	DriverShare float64 `json:"driverShare"`

	// Breakdown holds one human-readable line per non-zero component, in
	// computation order.
	Breakdown         []string `json:"breakdown"`
	VanSizeMultiplier float64  `json:"vanSizeMultiplier"`
	EstimatedTime     string   `json:"estimatedTime"`
	Currency          string   `json:"currency"`
}
