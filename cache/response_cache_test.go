package cache

import (
	"context"
	"testing"
	"time"

	"dp-server/db"
	"dp-server/models"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_RoundsCoordinates(t *testing.T) {
	prefs := models.PreferenceProfile{MaxBudget: 100}

	// ~5m apart: identical after 4-decimal rounding
	a := Fingerprint(models.Coordinate{Latitude: 40.71280, Longitude: -74.00600}, 5, prefs, "user-1")
	b := Fingerprint(models.Coordinate{Latitude: 40.712802, Longitude: -74.006004}, 5, prefs, "user-1")
	assert.Equal(t, a, b, "near-identical coordinates must share a fingerprint")

	// Clearly different location
	c := Fingerprint(models.Coordinate{Latitude: 40.7306, Longitude: -73.9352}, 5, prefs, "user-1")
	assert.NotEqual(t, a, c)
}

func TestFingerprint_DistinguishesRequester(t *testing.T) {
	loc := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	prefs := models.PreferenceProfile{MaxBudget: 100}

	a := Fingerprint(loc, 5, prefs, "user-1")
	b := Fingerprint(loc, 5, prefs, "user-2")
	anon := Fingerprint(loc, 5, prefs, "")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, anon)
	// Empty requester is stable
	assert.Equal(t, anon, Fingerprint(loc, 5, prefs, ""))
}

func TestFingerprint_DistinguishesPreferences(t *testing.T) {
	loc := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	a := Fingerprint(loc, 5, models.PreferenceProfile{MaxBudget: 100}, "user-1")
	b := Fingerprint(loc, 5, models.PreferenceProfile{MaxBudget: 200}, "user-1")
	c := Fingerprint(loc, 10, models.PreferenceProfile{MaxBudget: 100}, "user-1")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMemoryResponseCache_PutAndGet(t *testing.T) {
	c := NewMemoryResponseCache()
	payload := []models.DatePackage{{ID: "pkg-1", BudgetCategory: models.BudgetCategoryCheap}}

	c.Put("key-1", payload, 15*time.Minute)

	got, ok := c.Get("key-1")
	if !ok {
		t.Fatalf("Expected a hit, got a miss")
	}
	assert.Equal(t, payload, got)

	if _, ok := c.Get("other-key"); ok {
		t.Errorf("Expected a miss for unknown key")
	}
}

func TestMemoryResponseCache_ExpiredEntryIsAMiss(t *testing.T) {
	c := NewMemoryResponseCache()
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Put("key-1", []models.DatePackage{{ID: "pkg-1"}}, 15*time.Minute)

	// Still valid just before the TTL
	current = current.Add(14 * time.Minute)
	if _, ok := c.Get("key-1"); !ok {
		t.Fatalf("Expected a hit before expiry")
	}

	// Expired after the TTL
	current = current.Add(2 * time.Minute)
	if _, ok := c.Get("key-1"); ok {
		t.Errorf("Expected a miss after expiry")
	}

	// Lazily replaced by the next Put for the same key
	c.Put("key-1", []models.DatePackage{{ID: "pkg-2"}}, 15*time.Minute)
	got, ok := c.Get("key-1")
	if !ok {
		t.Fatalf("Expected a hit after replacement")
	}
	assert.Equal(t, "pkg-2", got[0].ID)
}

func TestMemoryResponseCache_EmptyPayloadIsCacheable(t *testing.T) {
	c := NewMemoryResponseCache()

	c.Put("key-empty", []models.DatePackage{}, 15*time.Minute)

	got, ok := c.Get("key-empty")
	if !ok {
		t.Fatalf("Expected a hit for cached empty payload")
	}
	assert.Len(t, got, 0)
}

func TestRedisResponseCache_RoundTrip(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	c := NewRedisResponseCache(client)

	payload := []models.DatePackage{{
		ID:             "pkg-cheap-a-b",
		BudgetCategory: models.BudgetCategoryCheap,
		ItemizedBudget: models.ItemizedBudget{Dining: 15, Activity: 10, Transportation: 5, TaxesAndTips: 3.75},
	}}
	c.Put("key-1", payload, time.Minute)

	got, ok := c.Get("key-1")
	if !ok {
		t.Fatalf("Expected a hit, got a miss")
	}
	assert.Equal(t, payload[0].ID, got[0].ID)
	assert.Equal(t, payload[0].ItemizedBudget, got[0].ItemizedBudget)

	if _, ok := c.Get("missing"); ok {
		t.Errorf("Expected a miss for unknown key")
	}
}
