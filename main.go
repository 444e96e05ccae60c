package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dp-server/config"
	"dp-server/di"
	"dp-server/models"
	"dp-server/util"
)

const lat = 40.7128
const lon = -74.0060

// testRecommendation runs one recommendation end to end against whatever
// sources the container wired, printing and plotting the result.
func testRecommendation(container *di.Container) {
	log.Println("Running: testRecommendation")
	resp, err := container.RecommendationService.Recommend(context.Background(), models.RecommendationRequest{
		Location:    models.Coordinate{Latitude: lat, Longitude: lon},
		Preferences: models.PreferenceProfile{MaxBudget: 100},
	})
	if err != nil {
		log.Println("Error while running testRecommendation: ", err)
		return
	}

	util.PrintRecommendationResponsePartially(resp)
	util.PlotPackageBudgets(resp.DatePackages)
}

func testCalendarDao(container *di.Container) {
	log.Println("Testing calendar dao with busy intervals fixture")

	intervals, err := util.ReadBusyIntervalsFromJSON(
		config.GetResourcePath(config.BUSY_INTERVALS_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to read busy intervals fixture: %v", err)
		return
	}

	if err := container.RedisCalendarDao.UpsertSharedBusyIntervals("rel-demo", "user-demo", intervals); err != nil {
		log.Printf("[MAIN] Failed to upsert busy intervals: %v", err)
		return
	}

	shared, err := container.RedisCalendarDao.GetPartnerBusyIntervals("rel-demo", "user-demo")
	if err != nil {
		log.Fatalf("[MAIN] Failed to get busy intervals: %v", err)
		return
	}
	log.Printf("Found %d shareable busy intervals\n", len(shared))
	for _, iv := range shared {
		fmt.Printf("Busy: %s -> %s\n", iv.StartTime, iv.EndTime)
	}
}

func main() {
	container := di.NewContainer("prod")

	// testRecommendation(container)
	// testCalendarDao(container)

	fmt.Println("warming cache!")
	if err := container.WarmupService.WarmupRecommendations(); err != nil {
		log.Printf("Initial warmup failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.WarmupService.StartPeriodicJob(config.CACHE_WARMUP_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.DatePlannerHttpServer.Start()
	fmt.Println(" server started!")
}
