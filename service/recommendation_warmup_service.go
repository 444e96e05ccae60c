package services

import (
	"context"
	"log"
	"time"

	"dp-server/models"
)

// Location holds latitude and longitude for warmup jobs.
type Location struct {
	Name string
	Lat  float64
	Lng  float64
}

// defaultWarmupLocations is the constant list of hot areas to pre-compute.
// Populate manually as needed.
var defaultWarmupLocations = []Location{
	{
		// Lower Manhattan
		Name: "lower-manhattan",
		Lat:  40.7128,
		Lng:  -74.0060,
	},
	{
		// Williamsburg
		Name: "williamsburg",
		Lat:  40.7081,
		Lng:  -73.9571,
	},
	{
		// Downtown Brooklyn
		Name: "downtown-brooklyn",
		Lat:  40.6928,
		Lng:  -73.9903,
	},
	{
		// Long Island City
		Name: "long-island-city",
		Lat:  40.7447,
		Lng:  -73.9485,
	},
}

// defaultWarmupProfile is the anonymous profile warmed per location. Requests
// carrying the same rounded location and defaults hit the warmed entry.
var defaultWarmupProfile = models.PreferenceProfile{MaxBudget: 100}

// RecommendationWarmupService periodically pre-computes recommendations for
// hot locations so first anonymous requests land on a warm cache.
type RecommendationWarmupService struct {
	recommendationService *RecommendationService
}

// NewRecommendationWarmupService constructs a new warmup service with dependencies.
func NewRecommendationWarmupService(recommendationService *RecommendationService) *RecommendationWarmupService {
	return &RecommendationWarmupService{
		recommendationService: recommendationService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (ws *RecommendationWarmupService) StartPeriodicJob(interval time.Duration) {
	go ws.startPeriodicJob(interval)
}

func (ws *RecommendationWarmupService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[RecommendationWarmupService] Running periodic warmup job.")
		if err := ws.WarmupRecommendations(); err != nil {
			log.Printf("[RecommendationWarmupService] WarmupRecommendations returned error: %v", err)
		} else {
			log.Println("[RecommendationWarmupService] WarmupRecommendations completed successfully.")
		}
	}
}

// WarmupRecommendations computes one anonymous recommendation per configured
// location. Each Recommend call writes its own cache entry; failures for a
// single location are logged and skipped.
func (ws *RecommendationWarmupService) WarmupRecommendations() error {
	log.Printf("[RecommendationWarmupService] Warming %d locations", len(defaultWarmupLocations))

	for _, loc := range defaultWarmupLocations {
		req := models.RecommendationRequest{
			Location:    models.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng},
			Preferences: defaultWarmupProfile,
		}

		resp, err := ws.recommendationService.Recommend(context.Background(), req)
		if err != nil {
			log.Printf("[RecommendationWarmupService] Failed to warm %s: %v", loc.Name, err)
			continue
		}
		log.Printf("[RecommendationWarmupService] Warmed %s with %d packages", loc.Name, len(resp.DatePackages))
	}
	return nil
}
