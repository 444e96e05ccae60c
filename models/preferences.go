package models

// PreferenceProfile carries the requester's taste and budget for one request.
// It is supplied by the caller and never persisted by the engine.
type PreferenceProfile struct {
	DateTypes []string `json:"date_types"`
	VibeTags  []string `json:"vibe_tags"`
	MaxBudget float64  `json:"max_budget"`
}

// DayTimePreference is the requester's day/time-of-day preference record,
// owned by the surrounding profile feature and read through the calendar DAO.
type DayTimePreference struct {
	// Weekday names, e.g. "Friday". Empty means no day restriction.
	PreferredDays []string `json:"preferred_days"`
	// One of "morning", "afternoon", "evening". Empty defaults to evening.
	PreferredTimeOfDay string `json:"preferred_time_of_day"`
}
