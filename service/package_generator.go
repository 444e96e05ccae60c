package services

import (
	"fmt"
	"math"
	"strings"

	"dp-server/models"
)

// tierSpec holds the per-tier pricing constants. Index order matches the
// output order: cheap, mid-range, splurge.
type tierSpec struct {
	category        string
	label           string
	diningBaseRate  float64 // multiplied by the dining candidate's price hint
	activityDefault float64 // used when the activity has no explicit ticket price
	transportScale  float64 // multiplied by the sum of both distances
	transportMin    float64
	transportMax    float64
	taxRate         float64 // applied to dining + activity
}

var budgetTiers = []tierSpec{
	{models.BudgetCategoryCheap, "Easygoing Evening", 15, 10, 0.5, 5, 15, 0.15},
	{models.BudgetCategoryMidRange, "Night To Remember", 20, 25, 0.75, 8, 20, 0.18},
	{models.BudgetCategorySplurge, "All-Out Date", 30, 50, 1.0, 12, 30, 0.20},
}

// DEFAULT_PRICE_HINT stands in for venues whose source gave no price level.
const DEFAULT_PRICE_HINT = 2

// The 2x slack keeps "stretch" options above the stated budget in play
// instead of hard-filtering them.
const BUDGET_SLACK_FACTOR = 2.0

// PackageGenerator assembles ranked candidates into priced date packages
// across budget tiers.
type PackageGenerator struct {
}

func NewPackageGenerator() *PackageGenerator {
	return &PackageGenerator{}
}

// Generate builds 0-3 packages in tier order. Tier i pairs the i-th best
// dining candidate with the i-th best activity candidate; a tier without both
// is skipped entirely. suggestedTimes is attached only when non-empty.
func (g *PackageGenerator) Generate(ranked []models.RankedCandidate, maxBudget float64, slots []models.CandidateSlot) []models.DatePackage {
	dining, activity := g.partitionCandidates(ranked)

	var packages []models.DatePackage
	for i, tier := range budgetTiers {
		if i >= len(dining) || i >= len(activity) {
			continue
		}
		pkg := g.buildPackage(tier, dining[i].Candidate, activity[i].Candidate, slots)
		if pkg.TotalCostEstimate > BUDGET_SLACK_FACTOR*maxBudget {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages
}

// partitionCandidates is the explicit pairing-by-tier-index split: dining is
// any venue tagged restaurant or cafe, activity is everything else.
func (g *PackageGenerator) partitionCandidates(ranked []models.RankedCandidate) (dining, activity []models.RankedCandidate) {
	for _, c := range ranked {
		if isDining(c.Candidate) {
			dining = append(dining, c)
		} else {
			activity = append(activity, c)
		}
	}
	return dining, activity
}

func isDining(c models.Candidate) bool {
	if c.Kind != models.CandidateKindVenue {
		return false
	}
	for _, tag := range c.CategoryTags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "restaurant") || strings.Contains(lower, "cafe") ||
			strings.Contains(lower, "café") {
			return true
		}
	}
	return false
}

func (g *PackageGenerator) buildPackage(tier tierSpec, dining, activity models.Candidate, slots []models.CandidateSlot) models.DatePackage {
	priceHint := dining.PriceHint
	if priceHint == 0 {
		priceHint = DEFAULT_PRICE_HINT
	}
	diningCost := float64(priceHint) * tier.diningBaseRate

	activityCost := tier.activityDefault
	if activity.MinTicketPrice > 0 {
		activityCost = activity.MinTicketPrice
	}

	transport := tier.transportScale * (dining.DistanceKm + activity.DistanceKm)
	transport = math.Min(math.Max(transport, tier.transportMin), tier.transportMax)

	taxes := (diningCost + activityCost) * tier.taxRate

	budget := models.ItemizedBudget{
		Dining:         diningCost,
		Activity:       activityCost,
		Transportation: transport,
		TaxesAndTips:   taxes,
	}

	pkg := models.DatePackage{
		// Deterministic id: same inputs, same package, same cache payload.
		ID:                fmt.Sprintf("pkg-%s-%s-%s", tier.category, dining.ID, activity.ID),
		Name:              tier.label,
		BudgetCategory:    tier.category,
		TotalCostEstimate: budget.Sum(),
		ItemizedBudget:    budget,
		Items:             []models.Candidate{dining, activity},
	}
	if len(slots) > 0 {
		pkg.SuggestedTimes = slots
	}
	return pkg
}
