// README: Deterministic fallback distance estimator for common UK routes.
package distance

import (
	"math"
	"strings"
)

const (
	// defaultDistanceMiles is returned when no city pair matches.
	defaultDistanceMiles = 50
	// averageSpeedMph converts an estimated distance into a duration.
	averageSpeedMph = 45
)

// knownRoutes maps "city-city" keys to road distances in miles. Lookup is
// symmetric; both orderings of a pair are checked.
var knownRoutes = map[string]float64{
	"london-manchester":     200,
	"london-birmingham":     120,
	"london-leeds":          195,
	"london-liverpool":      220,
	"london-newcastle":      290,
	"london-glasgow":        420,
	"london-edinburgh":      400,
	"manchester-birmingham": 90,
	"manchester-leeds":      45,
	"birmingham-leeds":      110,
}

// EstimateFallback produces a distance and duration estimate from free-text
// addresses. It is total: any input pair, however malformed, yields a
// positive distance, falling back to a fixed default when no route matches.
func EstimateFallback(origin, destination string) Result {
	from := normalizeArea(origin)
	to := normalizeArea(destination)

	miles, ok := knownRoutes[from+"-"+to]
	if !ok {
		miles, ok = knownRoutes[to+"-"+from]
	}
	if !ok {
		miles = defaultDistanceMiles
	}

	return Result{
		Miles:           miles,
		DurationMinutes: int(math.Round(miles / averageSpeedMph * 60)),
		Source:          SourceFallback,
		Exact:           false,
	}
}

// normalizeArea lower-cases the address, strips everything but letters and
// spaces, and keeps the first token as a crude city/area extraction.
func normalizeArea(address string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			return r
		}
		return -1
	}, strings.ToLower(address))

	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
