package services

import (
	"testing"
	"time"

	"dp-server/models"

	"github.com/stretchr/testify/assert"
)

func rankedDining(id string, priceHint int, distance float64) models.RankedCandidate {
	return models.RankedCandidate{Candidate: models.Candidate{
		ID:           id,
		Kind:         models.CandidateKindVenue,
		CategoryTags: []string{"Italian Restaurant"},
		PriceHint:    priceHint,
		DistanceKm:   distance,
	}}
}

func rankedActivity(id string, distance float64) models.RankedCandidate {
	return models.RankedCandidate{Candidate: models.Candidate{
		ID:           id,
		Kind:         models.CandidateKindVenue,
		CategoryTags: []string{"Bowling Alley"},
		DistanceKm:   distance,
	}}
}

func sixRanked() []models.RankedCandidate {
	return []models.RankedCandidate{
		rankedDining("d1", 1, 1.0),
		rankedDining("d2", 2, 1.0),
		rankedDining("d3", 3, 1.0),
		rankedActivity("a1", 1.0),
		rankedActivity("a2", 1.0),
		rankedActivity("a3", 1.0),
	}
}

func TestGenerate_ThreeTiersInOrder(t *testing.T) {
	g := NewPackageGenerator()

	packages := g.Generate(sixRanked(), 100, nil)

	assert.Len(t, packages, 3)
	assert.Equal(t, models.BudgetCategoryCheap, packages[0].BudgetCategory)
	assert.Equal(t, models.BudgetCategoryMidRange, packages[1].BudgetCategory)
	assert.Equal(t, models.BudgetCategorySplurge, packages[2].BudgetCategory)

	// Distinct totals per tier
	assert.NotEqual(t, packages[0].TotalCostEstimate, packages[1].TotalCostEstimate)
	assert.NotEqual(t, packages[1].TotalCostEstimate, packages[2].TotalCostEstimate)
}

func TestGenerate_TotalIsExactSumOfItemizedBudget(t *testing.T) {
	g := NewPackageGenerator()

	packages := g.Generate(sixRanked(), 100, nil)

	for _, p := range packages {
		assert.Equal(t, p.ItemizedBudget.Sum(), p.TotalCostEstimate,
			"total must equal the exact sum of itemized components")
	}
}

func TestGenerate_CheapTierArithmetic(t *testing.T) {
	g := NewPackageGenerator()

	packages := g.Generate(sixRanked(), 100, nil)
	cheap := packages[0]

	// dining: priceHint 1 x base rate 15
	assert.Equal(t, 15.0, cheap.ItemizedBudget.Dining)
	// activity: no ticket price -> tier default 10
	assert.Equal(t, 10.0, cheap.ItemizedBudget.Activity)
	// transport: 0.5 * (1.0 + 1.0) = 1.0, clamped up to the tier min 5
	assert.Equal(t, 5.0, cheap.ItemizedBudget.Transportation)
	// taxes: (15 + 10) * 0.15
	assert.InDelta(t, 3.75, cheap.ItemizedBudget.TaxesAndTips, 1e-9)
}

func TestGenerate_ExplicitTicketPriceWins(t *testing.T) {
	g := NewPackageGenerator()

	ranked := []models.RankedCandidate{
		rankedDining("d1", 2, 1.0),
		{Candidate: models.Candidate{
			ID:             "e1",
			Kind:           models.CandidateKindEvent,
			MinTicketPrice: 42,
		}},
	}
	packages := g.Generate(ranked, 200, nil)

	assert.Len(t, packages, 1)
	assert.Equal(t, 42.0, packages[0].ItemizedBudget.Activity)
}

func TestGenerate_MissingPriceHintDefaults(t *testing.T) {
	g := NewPackageGenerator()

	ranked := []models.RankedCandidate{
		rankedDining("d1", 0, 1.0), // no price level from the source
		rankedActivity("a1", 1.0),
	}
	packages := g.Generate(ranked, 200, nil)

	assert.Len(t, packages, 1)
	// default hint 2 x cheap base rate 15
	assert.Equal(t, 30.0, packages[0].ItemizedBudget.Dining)
}

func TestGenerate_TransportClampedToTierMax(t *testing.T) {
	g := NewPackageGenerator()

	ranked := []models.RankedCandidate{
		rankedDining("d1", 1, 40.0),
		rankedActivity("a1", 40.0),
	}
	packages := g.Generate(ranked, 1000, nil)

	assert.Len(t, packages, 1)
	// 0.5 * 80 = 40, clamped down to the cheap tier max 15
	assert.Equal(t, 15.0, packages[0].ItemizedBudget.Transportation)
}

func TestGenerate_OverBudgetPackageDiscarded(t *testing.T) {
	g := NewPackageGenerator()

	// Cheap tier total: 15 + 10 + 5 + 3.75 = 33.75. With maxBudget 10 the
	// 2x slack allows up to 20, so every tier is discarded.
	packages := g.Generate(sixRanked(), 10, nil)
	assert.Empty(t, packages)

	// maxBudget 17: slack bound 34 keeps cheap (33.75) and drops the rest.
	packages = g.Generate(sixRanked(), 17, nil)
	assert.Len(t, packages, 1)
	assert.Equal(t, models.BudgetCategoryCheap, packages[0].BudgetCategory)
	for _, p := range packages {
		assert.LessOrEqual(t, p.TotalCostEstimate, 2*17.0)
	}
}

func TestGenerate_TierSkippedWithoutBothCandidates(t *testing.T) {
	g := NewPackageGenerator()

	// Two dining, one activity: only the cheap tier can be built.
	ranked := []models.RankedCandidate{
		rankedDining("d1", 1, 1.0),
		rankedDining("d2", 2, 1.0),
		rankedActivity("a1", 1.0),
	}
	packages := g.Generate(ranked, 100, nil)

	assert.Len(t, packages, 1)
	assert.Equal(t, models.BudgetCategoryCheap, packages[0].BudgetCategory)

	// No dining at all: legitimately empty output.
	packages = g.Generate([]models.RankedCandidate{rankedActivity("a1", 1.0)}, 100, nil)
	assert.Empty(t, packages)
}

func TestGenerate_SuggestedTimesOnlyWhenSlotsExist(t *testing.T) {
	g := NewPackageGenerator()

	withoutSlots := g.Generate(sixRanked(), 100, nil)
	assert.Nil(t, withoutSlots[0].SuggestedTimes)

	slots := []models.CandidateSlot{
		{StartTime: time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC), DurationHours: 3},
	}
	withSlots := g.Generate(sixRanked(), 100, slots)
	assert.Equal(t, slots, withSlots[0].SuggestedTimes)
}

func TestGenerate_StableDeterministicIDs(t *testing.T) {
	g := NewPackageGenerator()

	a := g.Generate(sixRanked(), 100, nil)
	b := g.Generate(sixRanked(), 100, nil)

	assert.Equal(t, a, b, "same inputs must produce identical packages")
	assert.Equal(t, "pkg-cheap-d1-a1", a[0].ID)
}

func TestGenerate_EventsCountAsActivities(t *testing.T) {
	g := NewPackageGenerator()

	ranked := []models.RankedCandidate{
		rankedDining("d1", 1, 1.0),
		{Candidate: models.Candidate{ID: "e1", Kind: models.CandidateKindEvent}},
	}
	packages := g.Generate(ranked, 100, nil)

	assert.Len(t, packages, 1)
	assert.Equal(t, "e1", packages[0].Items[1].ID)
}
