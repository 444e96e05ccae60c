package ticketmaster

import (
	"context"

	"dp-server/models/ticketmaster"
)

// EventsAPI defines the interface for interacting with the Discovery API
type EventsAPI interface {
	SearchNearby(ctx context.Context, lat float64, lon float64) (*ticketmaster.EventSearchResponse, error)
	SetCredentials(apiKey string)
}
