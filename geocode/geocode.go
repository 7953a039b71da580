package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	return mapsClient, err
}

// Client adapts the maps client to the ingest geocoder seam.
type Client struct {
	Maps *maps.Client
}

// Geocode resolves a free-text locality query to coordinates. Used as a
// fallback for CSV rows whose map link yields nothing.
func (c Client) Geocode(query string) (float64, float64, error) {
	results, err := c.Maps.Geocode(context.Background(), &maps.GeocodingRequest{Address: query})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request for %q failed: %w", query, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode results for %q", query)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
