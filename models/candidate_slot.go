package models

import "time"

// CandidateSlot is a proposed meeting time for a date package.
type CandidateSlot struct {
	StartTime     time.Time `json:"start_time"`
	DurationHours int       `json:"duration_hours"`
}

// EndTime returns the slot's exclusive end.
func (s CandidateSlot) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationHours) * time.Hour)
}
