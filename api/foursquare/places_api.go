package foursquare

import (
	"context"

	"dp-server/models/foursquare"
)

// PlacesAPI defines the interface for interacting with the Foursquare Places API
type PlacesAPI interface {
	SearchNearby(ctx context.Context, lat float64, lon float64, radiusKm float64) (*foursquare.PlaceSearchResponse, error)
	SetCredentials(apiKey string)
}
