package models

import "encoding/json"

// Candidate kinds.
const (
	CandidateKindVenue = "venue"
	CandidateKindEvent = "event"
)

// Candidate is the normalized shape shared by venues and events after the
// provider adapters have run. Produced fresh per request, never persisted.
type Candidate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind"` // "venue" or "event"
	CategoryTags []string `json:"category_tags,omitempty"`

	DistanceKm   float64 `json:"distance_km"`
	QualityScore float64 `json:"quality_score"` // 0 when the source gave none

	// PriceHint is an ordinal 1..4 (0 = unknown), venue sources only.
	PriceHint int `json:"price_hint,omitempty"`
	// MinTicketPrice is an explicit minimum ticket price, event sources only
	// (0 = unknown).
	MinTicketPrice float64 `json:"min_ticket_price,omitempty"`

	// RawSource is the provider payload passed through untouched for display.
	RawSource json.RawMessage `json:"raw_source,omitempty"`
}

// RankedCandidate is a Candidate plus its computed ranking score.
type RankedCandidate struct {
	Candidate
	Score float64 `json:"score"`
}
