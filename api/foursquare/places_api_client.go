package foursquare

import (
	"context"
	"net/url"
	"strconv"

	"dp-server/api"
	"dp-server/models/foursquare"
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent on every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// SearchNearby retrieves places around a coordinate and decodes the response.
// Radius is sent in meters as the API expects.
func (c *PlacesApiClient) SearchNearby(ctx context.Context, lat float64, lon float64, radiusKm float64) (*foursquare.PlaceSearchResponse, error) {
	q := url.Values{}
	q.Set("ll", ftoa(lat)+","+ftoa(lon))
	q.Set("radius", strconv.Itoa(int(radiusKm*1000)))
	q.Set("fields", "fsq_id,name,categories,geocodes,rating,price_level")

	headers := map[string]string{
		"Authorization": c.apiKey,
	}

	var response foursquare.PlaceSearchResponse
	err := c.Request(ctx, "GET", "/places/search", q, headers, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
