package foursquare

import (
	"context"
	"fmt"

	"dp-server/config"
	"dp-server/models/foursquare"
	"dp-server/util"
)

// PlacesApiClientMock embeds mocked logic for the places api client
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// SearchNearby retrieves places from the JSON fixture on disk.
func (c *PlacesApiClientMock) SearchNearby(ctx context.Context, lat float64, lon float64, radiusKm float64) (*foursquare.PlaceSearchResponse, error) {
	response, err := util.ReadPlaceSearchResponseFromJSON(
		config.GetResourcePath(config.PLACE_SEARCH_RESPONSE_RESOURCE))

	if err != nil {
		fmt.Println("Could not read place search response from json")
		return nil, err
	}

	return response, nil
}

// SetCredentials is a no-op for the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {
}
