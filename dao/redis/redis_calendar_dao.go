package redis

import (
	"encoding/json"
	"fmt"

	"dp-server/db"
	"dp-server/models"
)

const SHARED_BUSY_KEY_FORMAT_V1 = "shared_busy_v1:%s:%s"
const DAY_TIME_PREFERENCE_KEY_FORMAT_V1 = "date_prefs_v1:%s"

// RedisCalendarDAO reads the calendar data the surrounding features write:
// the partner's busy intervals shared into a relationship, and each user's
// day/time-of-day preference record.
//
// The shareable flag is enforced here, at the provider boundary: intervals
// without shareable=true are dropped before anything reaches the engine.
type RedisCalendarDAO struct {
	client db.RedisClient
}

// NewRedisCalendarDAO initializes a RedisCalendarDAO with the Redis client.
func NewRedisCalendarDAO(client db.RedisClient) *RedisCalendarDAO {
	return &RedisCalendarDAO{client: client}
}

// UpsertSharedBusyIntervals stores the partner-visible busy intervals for a
// relationship. Written by the calendar-sharing feature, read by the engine.
func (dao *RedisCalendarDAO) UpsertSharedBusyIntervals(relationshipID, requesterID string, intervals []models.BusyInterval) error {
	key := fmt.Sprintf(SHARED_BUSY_KEY_FORMAT_V1, relationshipID, requesterID)
	data, err := json.Marshal(intervals)
	if err != nil {
		return fmt.Errorf("failed to marshal busy intervals for %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set busy intervals in redis: %w", err)
	}
	return nil
}

// GetPartnerBusyIntervals retrieves the partner's busy intervals visible to
// the requester. A missing key means nothing was shared and is not an error.
// Only shareable intervals are returned.
func (dao *RedisCalendarDAO) GetPartnerBusyIntervals(relationshipID, requesterID string) ([]models.BusyInterval, error) {
	key := fmt.Sprintf(SHARED_BUSY_KEY_FORMAT_V1, relationshipID, requesterID)
	str, err := dao.client.Get(key)
	if err != nil {
		// Nothing shared for this relationship yet.
		return nil, nil
	}

	var all []models.BusyInterval
	if err := json.Unmarshal([]byte(str), &all); err != nil {
		return nil, fmt.Errorf("failed to unmarshal busy intervals JSON: %w", err)
	}

	shareable := make([]models.BusyInterval, 0, len(all))
	for _, iv := range all {
		if iv.Shareable {
			shareable = append(shareable, iv)
		}
	}
	return shareable, nil
}

// UpsertDayTimePreference stores a user's day/time-of-day preference record.
func (dao *RedisCalendarDAO) UpsertDayTimePreference(userID string, pref models.DayTimePreference) error {
	key := fmt.Sprintf(DAY_TIME_PREFERENCE_KEY_FORMAT_V1, userID)
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to marshal day/time preference for %s: %w", userID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set day/time preference in redis: %w", err)
	}
	return nil
}

// GetDayTimePreference retrieves a user's preference record, or nil when the
// user never saved one.
func (dao *RedisCalendarDAO) GetDayTimePreference(userID string) (*models.DayTimePreference, error) {
	key := fmt.Sprintf(DAY_TIME_PREFERENCE_KEY_FORMAT_V1, userID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}

	var pref models.DayTimePreference
	if err := json.Unmarshal([]byte(str), &pref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal day/time preference JSON: %w", err)
	}
	return &pref, nil
}
