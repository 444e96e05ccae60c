package util

import (
	"encoding/json"
	"fmt"
	"os"

	"dp-server/models"
	"dp-server/models/foursquare"
	"dp-server/models/ticketmaster"
)

// ReadPlaceSearchResponseFromJSON loads a PlaceSearchResponse from JSON on disk.
func ReadPlaceSearchResponseFromJSON(filePath string) (*foursquare.PlaceSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp foursquare.PlaceSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlaceSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadEventSearchResponseFromJSON loads an EventSearchResponse from JSON on disk.
func ReadEventSearchResponseFromJSON(filePath string) (*ticketmaster.EventSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp ticketmaster.EventSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal EventSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadBusyIntervalsFromJSON loads a slice of BusyIntervals from JSON on disk.
func ReadBusyIntervalsFromJSON(filePath string) ([]models.BusyInterval, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var intervals []models.BusyInterval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal busy intervals: %w", err)
	}
	return intervals, nil
}

// ReadDayTimePreferenceFromJSON loads a DayTimePreference from JSON on disk.
func ReadDayTimePreferenceFromJSON(filePath string) (*models.DayTimePreference, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var pref models.DayTimePreference
	if err := json.Unmarshal(data, &pref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DayTimePreference: %w", err)
	}
	return &pref, nil
}

// PrintRecommendationResponsePartially prints key fields of a response.
func PrintRecommendationResponsePartially(resp *models.RecommendationResponse) {
	fmt.Printf("Packages: %d\n", len(resp.DatePackages))
	for _, p := range resp.DatePackages {
		fmt.Printf("  [%s] %s total=%.2f slots=%d\n",
			p.BudgetCategory, p.Name, p.TotalCostEstimate, len(p.SuggestedTimes))
	}
}
