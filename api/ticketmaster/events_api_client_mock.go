package ticketmaster

import (
	"context"
	"fmt"

	"dp-server/config"
	"dp-server/models/ticketmaster"
	"dp-server/util"
)

// EventsApiClientMock embeds mocked logic for the events api client
type EventsApiClientMock struct {
}

// NewEventsApiClientMock creates a new instance of EventsApiClientMock
func NewEventsApiClientMock() *EventsApiClientMock {
	return &EventsApiClientMock{}
}

// SearchNearby retrieves events from the JSON fixture on disk.
func (c *EventsApiClientMock) SearchNearby(ctx context.Context, lat float64, lon float64) (*ticketmaster.EventSearchResponse, error) {
	response, err := util.ReadEventSearchResponseFromJSON(
		config.GetResourcePath(config.EVENT_SEARCH_RESPONSE_RESOURCE))

	if err != nil {
		fmt.Println("Could not read event search response from json")
		return nil, err
	}

	return response, nil
}

// SetCredentials is a no-op for the mock.
func (c *EventsApiClientMock) SetCredentials(apiKey string) {
}
