// README: Quote engine; builds a deterministic price breakdown from move parameters.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidInput marks rejected quote parameters. Wrapped errors carry a
// user-facing message identifying the bad field.
var ErrInvalidInput = errors.New("invalid input")

const minAddressLen = 5

type Service struct {
	rates Rates
}

func NewService(rates Rates) *Service {
	return &Service{rates: rates}
}

// BuildBreakdown validates the parameters and computes the full price
// breakdown. Pure: no I/O, no shared state, identical input yields an
// identical result. Each component is rounded to 2 decimals (half away from
// zero) at the point of computation; the total is rounded once more.
func (s *Service) BuildBreakdown(p QuoteParams) (*PriceBreakdown, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	r := s.rates
	mult := r.vanSizeMultiplier(p.VanSize)

	distanceCharge := roundMoney(p.DistanceMiles * r.PricePerMile * mult)

	minutes := p.DurationMinutes
	if minutes <= 0 {
		minutes = p.EstimatedHours * 60
	}
	hours := minutes / 60
	// Helpers raise the effective hourly rate AND attract the flat fee below.
	// The double charge is kept deliberately; see DESIGN.md.
	timeCharge := roundMoney(hours * (r.HourlyRate + float64(p.Helpers)*r.HelperHourlyRate))

	helpersFee := roundMoney(float64(p.Helpers) * r.HelperFlatFee)

	floorFee := r.floorAccessFee(p.FloorAccess)
	if p.LiftAvailable {
		floorFee *= r.LiftReductionFactor
	}
	floorAccessFee := roundMoney(floorFee)

	var peakTimeSurcharge float64
	if isPeakTime(p.MoveDate) {
		peakTimeSurcharge = roundMoney(distanceCharge * r.PeakSurchargeRate)
	}

	urgencySurcharge := roundMoney((r.urgencyMultiplier(p.Urgency) - 1) * (distanceCharge + timeCharge))

	fuelCost := roundMoney(p.DistanceMiles * r.FuelCostPerMile)
	returnJourneyCost := roundMoney(distanceCharge * r.ReturnJourneyFactor)

	var congestionCharge float64
	if isInCongestionZone(p.PickupAddress) || isInCongestionZone(p.DeliveryAddress) {
		congestionCharge = roundMoney(r.CongestionCharge)
	}

	totalPrice := roundMoney(distanceCharge + timeCharge + helpersFee + floorAccessFee +
		peakTimeSurcharge + urgencySurcharge + fuelCost + returnJourneyCost + congestionCharge)

	platformFee := roundMoney(totalPrice * r.PlatformFeeRate)
	vatAmount := roundMoney(platformFee * r.VATRate)
	driverShare := totalPrice - platformFee - vatAmount

	b := &PriceBreakdown{
		DistanceCharge:    distanceCharge,
		TimeCharge:        timeCharge,
		HelpersFee:        helpersFee,
		FloorAccessFee:    floorAccessFee,
		PeakTimeSurcharge: peakTimeSurcharge,
		UrgencySurcharge:  urgencySurcharge,
		FuelCost:          fuelCost,
		ReturnJourneyCost: returnJourneyCost,
		CongestionCharge:  congestionCharge,
		TotalPrice:        totalPrice,
		PlatformFee:       platformFee,
		VATAmount:         vatAmount,
		DriverShare:       driverShare,
		VanSizeMultiplier: mult,
		EstimatedTime:     FormatDuration(int(math.Round(minutes))),
		Currency:          "GBP",
	}
	b.Breakdown = lineItems(p, b)
	return b, nil
}

func validateParams(p QuoteParams) error {
	if len(strings.TrimSpace(p.PickupAddress)) < minAddressLen {
		return fmt.Errorf("%w: please enter a valid pickup address", ErrInvalidInput)
	}
	if len(strings.TrimSpace(p.DeliveryAddress)) < minAddressLen {
		return fmt.Errorf("%w: please enter a valid delivery address", ErrInvalidInput)
	}
	if p.DistanceMiles <= 0 || math.IsNaN(p.DistanceMiles) || math.IsInf(p.DistanceMiles, 0) {
		return fmt.Errorf("%w: invalid distance, addresses may be too similar or incomplete", ErrInvalidInput)
	}
	return nil
}

// isPeakTime reports whether the move date falls on a weekend or inside a
// rush-hour window.
func isPeakTime(t time.Time) bool {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	h := t.Hour()
	return (h >= morningRushStart && h < morningRushEnd) ||
		(h >= eveningRushStart && h < eveningRushEnd)
}

// isInCongestionZone detects central-London addresses by substring: the text
// must mention "london" together with one of the listed district codes.
func isInCongestionZone(address string) bool {
	lower := strings.ToLower(address)
	if !strings.Contains(lower, "london") {
		return false
	}
	for _, district := range congestionDistricts {
		if strings.Contains(lower, district) {
			return true
		}
	}
	return false
}

// lineItems renders one label per non-zero component, in computation order.
func lineItems(p QuoteParams, b *PriceBreakdown) []string {
	items := make([]string, 0, 9)
	if b.DistanceCharge > 0 {
		items = append(items, fmt.Sprintf("Distance charge (%.1f miles, %s van): %s",
			p.DistanceMiles, p.VanSize.normalized(), FormatPrice(b.DistanceCharge)))
	}
	if b.TimeCharge > 0 {
		items = append(items, fmt.Sprintf("Time charge (%s): %s",
			b.EstimatedTime, FormatPrice(b.TimeCharge)))
	}
	if b.HelpersFee > 0 {
		items = append(items, fmt.Sprintf("Helpers fee (%d %s): %s",
			p.Helpers, pluralize("helper", p.Helpers), FormatPrice(b.HelpersFee)))
	}
	if b.FloorAccessFee > 0 {
		label := string(p.FloorAccess.normalized())
		if p.LiftAvailable {
			label += ", lift available"
		}
		items = append(items, fmt.Sprintf("Floor access fee (%s): %s",
			label, FormatPrice(b.FloorAccessFee)))
	}
	if b.PeakTimeSurcharge > 0 {
		items = append(items, fmt.Sprintf("Peak time surcharge: %s", FormatPrice(b.PeakTimeSurcharge)))
	}
	if b.UrgencySurcharge > 0 {
		items = append(items, fmt.Sprintf("Urgency surcharge (%s): %s",
			p.Urgency.normalized(), FormatPrice(b.UrgencySurcharge)))
	}
	if b.FuelCost > 0 {
		items = append(items, fmt.Sprintf("Fuel cost: %s", FormatPrice(b.FuelCost)))
	}
	if b.ReturnJourneyCost > 0 {
		items = append(items, fmt.Sprintf("Return journey cost: %s", FormatPrice(b.ReturnJourneyCost)))
	}
	if b.CongestionCharge > 0 {
		items = append(items, fmt.Sprintf("Congestion charge: %s", FormatPrice(b.CongestionCharge)))
	}
	return items
}
