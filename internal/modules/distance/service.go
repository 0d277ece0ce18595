// README: Distance resolver; prefers a live lookup and falls back to estimation.
package distance

import (
	"context"
	"log"
)

// Source identifies where a distance figure came from, so downstream
// consumers can warn the user about non-exact estimates.
type Source string

const (
	SourceGoogleMaps Source = "google_maps"
	SourceFallback   Source = "fallback"
)

// Result is one resolved distance between two addresses.
type Result struct {
	Miles           float64 `json:"distance"`
	DurationMinutes int     `json:"estimatedTime"`
	Source          Source  `json:"source"`
	Exact           bool    `json:"exactCalculation"`
}

// Lookup is a live distance provider (e.g. the Google Maps client).
type Lookup interface {
	Distance(ctx context.Context, origin, destination string) (Result, error)
}

type Service struct {
	lookup Lookup
}

// NewService wires an optional live lookup. A nil lookup means every request
// uses the fallback estimator.
func NewService(lookup Lookup) *Service {
	return &Service{lookup: lookup}
}

// Resolve returns a distance for the address pair. It is total: lookup
// failures degrade to the fallback estimate rather than erroring.
func (s *Service) Resolve(ctx context.Context, origin, destination string) Result {
	if s.lookup != nil {
		res, err := s.lookup.Distance(ctx, origin, destination)
		if err == nil {
			return res
		}
		log.Printf("distance lookup failed, using fallback estimate: %v", err)
	}
	return EstimateFallback(origin, destination)
}
