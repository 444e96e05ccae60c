package models

import "time"

// BusyInterval is a calendar block. Only intervals the owner has flagged
// shareable ever leave the calendar DAO.
type BusyInterval struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Shareable bool      `json:"shareable"`
}

// Overlaps reports whether [start, end) intersects this interval.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// Availability bundles the calendar context for one request: the partner's
// shareable busy intervals and the requester's preference record.
type Availability struct {
	BusyIntervals []BusyInterval     `json:"busy_intervals"`
	Preferences   *DayTimePreference `json:"preferences,omitempty"`
}
