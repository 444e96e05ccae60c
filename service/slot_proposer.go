package services

import (
	"strings"
	"time"

	"dp-server/config"
	"dp-server/models"
)

// Primary anchor hour per time-of-day bucket.
var timeOfDayAnchors = map[string]int{
	"morning":   10,
	"afternoon": 14,
	"evening":   19,
}

const DEFAULT_TIME_OF_DAY = "evening"

// ANCHOR_OFFSET_MINUTES is the fixed generation order for a day's candidate
// anchors: the ideal time first, then progressively further alternates.
var ANCHOR_OFFSET_MINUTES = []int{0, -60, 60, -120, 120}

// SlotProposer produces conflict-free future meeting times from a partner's
// shareable busy intervals and the requester's day/time preference.
type SlotProposer struct {
	// now is swappable so tests can pin the scan window.
	now func() time.Time
}

func NewSlotProposer() *SlotProposer {
	return &SlotProposer{now: time.Now}
}

// Propose scans the next SLOT_LOOKAHEAD_DAYS calendar days starting tomorrow
// and accepts slots in generation order until SLOT_TARGET_COUNT is reached.
// The result is never re-sorted. Without any calendar or preference context
// it returns an empty list: time suggestions are optional enrichment.
func (sp *SlotProposer) Propose(busy []models.BusyInterval, pref *models.DayTimePreference) []models.CandidateSlot {
	if busy == nil && pref == nil {
		return nil
	}

	preferredDays := make(map[string]bool)
	timeOfDay := DEFAULT_TIME_OF_DAY
	if pref != nil {
		for _, d := range pref.PreferredDays {
			preferredDays[strings.ToLower(d)] = true
		}
		if _, ok := timeOfDayAnchors[pref.PreferredTimeOfDay]; ok {
			timeOfDay = pref.PreferredTimeOfDay
		}
	}
	anchorHour := timeOfDayAnchors[timeOfDay]

	now := sp.now()
	var slots []models.CandidateSlot

	for dayOffset := 1; dayOffset <= config.SLOT_LOOKAHEAD_DAYS; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		if len(preferredDays) > 0 && !preferredDays[strings.ToLower(day.Weekday().String())] {
			continue
		}

		primary := time.Date(day.Year(), day.Month(), day.Day(), anchorHour, 0, 0, 0, day.Location())

		for _, offset := range ANCHOR_OFFSET_MINUTES {
			start := primary.Add(time.Duration(offset) * time.Minute)
			if !withinReasonableHours(start) {
				continue
			}

			slot := models.CandidateSlot{
				StartTime:     start,
				DurationHours: config.SLOT_DURATION_HOURS,
			}
			if conflicts(slot, busy) || overlapsAccepted(slot, slots) {
				continue
			}

			slots = append(slots, slot)
			if len(slots) >= config.SLOT_TARGET_COUNT {
				return slots
			}
		}
	}

	return slots
}

// withinReasonableHours checks the slot start against the 09:00-22:00 window.
func withinReasonableHours(start time.Time) bool {
	hour := start.Hour()
	return hour >= config.REASONABLE_HOUR_MIN && hour <= config.REASONABLE_HOUR_MAX
}

func conflicts(slot models.CandidateSlot, busy []models.BusyInterval) bool {
	for _, iv := range busy {
		if iv.Overlaps(slot.StartTime, slot.EndTime()) {
			return true
		}
	}
	return false
}

// overlapsAccepted keeps proposed slots mutually conflict-free: two
// suggestions the couple cannot attend back to back are not two options.
func overlapsAccepted(slot models.CandidateSlot, accepted []models.CandidateSlot) bool {
	for _, s := range accepted {
		if slot.StartTime.Before(s.EndTime()) && slot.EndTime().After(s.StartTime) {
			return true
		}
	}
	return false
}
