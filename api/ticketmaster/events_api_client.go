package ticketmaster

import (
	"context"
	"net/url"
	"strconv"

	"dp-server/api"
	"dp-server/models/ticketmaster"
)

// EventsApiClient embeds the common HTTPClient
type EventsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewEventsApiClient creates a new instance of EventsApiClient
func NewEventsApiClient(httpClient *api.HTTPClient) *EventsApiClient {
	return &EventsApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent on every request.
func (c *EventsApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// SearchNearby retrieves events around a coordinate and decodes the response.
func (c *EventsApiClient) SearchNearby(ctx context.Context, lat float64, lon float64) (*ticketmaster.EventSearchResponse, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("latlong", ftoa(lat)+","+ftoa(lon))
	q.Set("sort", "date,asc")

	var response ticketmaster.EventSearchResponse
	err := c.Request(ctx, "GET", "/events.json", q, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
