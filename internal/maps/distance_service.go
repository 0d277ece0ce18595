// README: Google Maps Distance Matrix client.
package maps

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"easymove/internal/modules/distance"
)

const metersPerMile = 1609.344

// DistanceService handles interactions with the Google Maps API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Distance returns the driving distance in miles and duration in minutes
// between origin and destination. Implements distance.Lookup.
func (s *DistanceService) Distance(ctx context.Context, origin, destination string) (distance.Result, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
		Language:     "en-GB",
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return distance.Result{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return distance.Result{}, fmt.Errorf("no route found")
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return distance.Result{}, fmt.Errorf("distance lookup status %s", el.Status)
	}

	return distance.Result{
		Miles:           float64(el.Distance.Meters) / metersPerMile,
		DurationMinutes: int(math.Round(el.Duration.Minutes())),
		Source:          distance.SourceGoogleMaps,
		Exact:           true,
	}, nil
}

var _ distance.Lookup = (*DistanceService)(nil)
