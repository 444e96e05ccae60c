package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Request defaults
const DEFAULT_RADIUS_KM = 5.0

// Response cache
const RESPONSE_CACHE_TTL_MINUTES = 15

// Upstream provider calls: single attempt, per-call timeout
const UPSTREAM_CALL_TIMEOUT_SECONDS = 6

// Slot proposal
const SLOT_LOOKAHEAD_DAYS = 7
const SLOT_TARGET_COUNT = 5
const SLOT_DURATION_HOURS = 3
const REASONABLE_HOUR_MIN = 9
const REASONABLE_HOUR_MAX = 22

// Cache warmup job
const CACHE_WARMUP_SCHEDULE_MINUTES = 14

// Foursquare Places API
const FOURSQUARE_API_KEY = "fsq3K1dQb0e5b2a74e5db88864b16d9d68aa"
const FOURSQUARE_ENDPOINT_BASE_V3 = "https://api.foursquare.com/v3"

// Ticketmaster Discovery API
const TICKETMASTER_API_KEY = "Gq7bAl2PZxW9c0eNFkR4tUv8yD3mHsJ1"
const TICKETMASTER_ENDPOINT_BASE_V2 = "https://app.ticketmaster.com/discovery/v2"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACE_SEARCH_RESPONSE_RESOURCE = "place_search_response.json"
const EVENT_SEARCH_RESPONSE_RESOURCE = "event_search_response.json"
const BUSY_INTERVALS_RESOURCE = "shared_busy_intervals.json"
const DAY_TIME_PREFERENCE_RESOURCE = "day_time_preference.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
