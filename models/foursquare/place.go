package foursquare

import "fmt"

// PlaceSearchResponse mirrors the Foursquare Places search payload.
type PlaceSearchResponse struct {
	Results []Place `json:"results"`
}

// Place is a single point of interest returned by the Places API.
type Place struct {
	FsqID      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	Geocodes   Geocodes   `json:"geocodes"`
	Address    string     `json:"address,omitempty"`

	// Optional quality/price signals: zero when the API omitted them.
	Rating     float64 `json:"rating,omitempty"`      // 0..5
	PriceLevel int     `json:"price_level,omitempty"` // 1..4
}

type Category struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type Geocodes struct {
	Main LatLng `json:"main"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(id=%s, name=%s, lat=%f, lon=%f)",
		p.FsqID, p.Name, p.Geocodes.Main.Latitude, p.Geocodes.Main.Longitude)
}
