package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"dp-server/models"
)

// ResponseCache short-circuits repeated identical recommendation requests.
// Implementations must be safe for concurrent use and are always injected
// through the container, never shared as a package-level singleton.
type ResponseCache interface {
	// Get returns the cached payload for key, or ok=false on miss/expiry.
	Get(key string) ([]models.DatePackage, bool)

	// Put stores payload under key for ttl. An expired entry under the same
	// key is replaced.
	Put(key string, payload []models.DatePackage, ttl time.Duration)
}

// Fingerprint derives the deterministic cache key for one request.
// Coordinates are rounded to 4 decimals (~11m) so near-identical requests
// share an entry; an absent requester hashes as "anonymous".
func Fingerprint(location models.Coordinate, radiusKm float64, prefs models.PreferenceProfile, requesterID string) string {
	if requesterID == "" {
		requesterID = "anonymous"
	}
	// PreferenceProfile marshals deterministically (fixed field order).
	prefsJSON, _ := json.Marshal(prefs)

	raw := fmt.Sprintf("%.4f:%.4f:%g:%s:%s",
		location.Latitude, location.Longitude, radiusKm, prefsJSON, requesterID)

	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum)
}
