package models

// RecommendationRequest is the engine's entry contract, transport-independent.
type RecommendationRequest struct {
	Location       Coordinate        `json:"location"`
	RadiusKm       float64           `json:"radius_km,omitempty"` // defaults to 5
	Preferences    PreferenceProfile `json:"preferences"`
	RequesterID    string            `json:"requester_id,omitempty"`
	RelationshipID string            `json:"relationship_id,omitempty"`
}

// RecommendationResponse wraps the generated packages. The list may be empty
// when not enough candidates exist to build any tier.
type RecommendationResponse struct {
	DatePackages []DatePackage `json:"date_packages"`
}
