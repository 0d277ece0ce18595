// README: Fixed rate tables consumed by the quote engine.
package pricing

// Rates holds every constant the breakdown builder consumes. A Rates value is
// read-only after construction and safe to share between goroutines.
type Rates struct {
	PricePerMile        float64
	VanSizeMultipliers  map[VanSize]float64
	HourlyRate          float64
	HelperHourlyRate    float64
	HelperFlatFee       float64
	FloorAccessFees     map[FloorAccess]float64
	LiftReductionFactor float64
	PeakSurchargeRate   float64
	UrgencyMultipliers  map[Urgency]float64
	FuelCostPerMile     float64
	ReturnJourneyFactor float64
	CongestionCharge    float64
	PlatformFeeRate     float64
	VATRate             float64
}

// DefaultRates returns the standard GBP rate card.
func DefaultRates() Rates {
	return Rates{
		PricePerMile: 1.30,
		VanSizeMultipliers: map[VanSize]float64{
			VanSmall:  1.0,
			VanMedium: 1.1,
			VanLarge:  1.2,
			VanLuton:  1.3,
		},
		HourlyRate:       25.0,
		HelperHourlyRate: 15.0,
		HelperFlatFee:    20.0,
		FloorAccessFees: map[FloorAccess]float64{
			FloorGround:    0,
			FloorFirst:     15.0,
			FloorSecond:    25.0,
			FloorThirdPlus: 40.0,
		},
		LiftReductionFactor: 0.25,
		PeakSurchargeRate:   0.15,
		UrgencyMultipliers: map[Urgency]float64{
			UrgencyStandard: 1.0,
			UrgencyPriority: 1.2,
			UrgencyExpress:  1.5,
		},
		FuelCostPerMile:     0.20,
		ReturnJourneyFactor: 0.35, // the van returns empty
		CongestionCharge:    15.0,
		PlatformFeeRate:     0.25,
		VATRate:             0.20,
	}
}

func (r Rates) vanSizeMultiplier(v VanSize) float64 {
	return r.VanSizeMultipliers[v.normalized()]
}

func (r Rates) floorAccessFee(f FloorAccess) float64 {
	return r.FloorAccessFees[f.normalized()]
}

func (r Rates) urgencyMultiplier(u Urgency) float64 {
	return r.UrgencyMultipliers[u.normalized()]
}

// Rush-hour windows for the peak-time surcharge, in local hours.
const (
	morningRushStart = 6
	morningRushEnd   = 9
	eveningRushStart = 17
	eveningRushEnd   = 20
)

// congestionDistricts are the central-London postal district prefixes that
// attract the congestion charge. Matching is a crude substring check against
// the address text; no better signal is available at quote time.
var congestionDistricts = []string{
	"ec1", "ec2", "ec3", "ec4",
	"wc1", "wc2",
	"sw1", "w1", "se1",
}
