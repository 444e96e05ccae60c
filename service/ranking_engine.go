package services

import (
	"sort"

	"dp-server/models"
)

// Ranking score weights. Venue scores blend the quality signal with proximity;
// events carry no comparable signal in scope, so they score a flat baseline.
const VENUE_QUALITY_WEIGHT = 0.7
const VENUE_DISTANCE_WEIGHT = 0.3
const EVENT_BASELINE_SCORE = 0.5

// RankingEngine merges venue and event candidates into one ranked list.
type RankingEngine struct {
}

func NewRankingEngine() *RankingEngine {
	return &RankingEngine{}
}

// Rank scores and sorts the candidates: descending by score, ties broken by
// ascending distance, then by arrival order (venues first, then events, each
// in source order). Inputs are copied, never mutated.
func (r *RankingEngine) Rank(venues, events []models.Candidate) []models.RankedCandidate {
	ranked := make([]models.RankedCandidate, 0, len(venues)+len(events))

	for _, c := range venues {
		ranked = append(ranked, models.RankedCandidate{
			Candidate: c,
			Score:     c.QualityScore*VENUE_QUALITY_WEIGHT - c.DistanceKm*VENUE_DISTANCE_WEIGHT,
		})
	}
	for _, c := range events {
		ranked = append(ranked, models.RankedCandidate{
			Candidate: c,
			Score:     EVENT_BASELINE_SCORE,
		})
	}

	// SliceStable keeps arrival order for full ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
