package services

import (
	"strings"
	"testing"
	"time"

	"dp-server/models"

	"github.com/stretchr/testify/assert"
)

// pinnedProposer returns a SlotProposer whose "now" is a fixed Wednesday noon.
func pinnedProposer() (*SlotProposer, time.Time) {
	// Wednesday 2026-09-02 12:00 UTC
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	sp := NewSlotProposer()
	sp.now = func() time.Time { return now }
	return sp, now
}

func TestPropose_NoContextReturnsEmpty(t *testing.T) {
	sp, _ := pinnedProposer()

	slots := sp.Propose(nil, nil)

	assert.Empty(t, slots, "without calendar data or preferences no slots are proposed")
}

func TestPropose_TargetCountAndGenerationOrder(t *testing.T) {
	sp, now := pinnedProposer()

	pref := &models.DayTimePreference{PreferredTimeOfDay: "evening"}
	slots := sp.Propose([]models.BusyInterval{}, pref)

	assert.Len(t, slots, 5)

	// First slot is tomorrow's primary evening anchor.
	tomorrow := now.AddDate(0, 0, 1)
	want := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 19, 0, 0, 0, time.UTC)
	assert.Equal(t, want, slots[0].StartTime)

	// Strictly in generation order across days, never re-sorted.
	for i := 1; i < len(slots); i++ {
		if !slots[i].StartTime.After(slots[i-1].StartTime) {
			t.Errorf("slots out of generation order at %d: %v then %v",
				i, slots[i-1].StartTime, slots[i].StartTime)
		}
	}
}

func TestPropose_SkipsNonPreferredDays(t *testing.T) {
	sp, _ := pinnedProposer()

	pref := &models.DayTimePreference{
		PreferredDays:      []string{"Friday"},
		PreferredTimeOfDay: "evening",
	}
	slots := sp.Propose([]models.BusyInterval{}, pref)

	assert.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Equal(t, time.Friday, s.StartTime.Weekday())
	}
}

func TestPropose_EmptyDaySetMeansNoRestriction(t *testing.T) {
	sp, _ := pinnedProposer()

	pref := &models.DayTimePreference{PreferredTimeOfDay: "afternoon"}
	slots := sp.Propose([]models.BusyInterval{}, pref)

	assert.Len(t, slots, 5)
	weekdays := make(map[time.Weekday]bool)
	for _, s := range slots {
		weekdays[s.StartTime.Weekday()] = true
	}
	assert.True(t, len(weekdays) > 1, "expected slots across several days")
}

func TestPropose_AnchorsStayWithinReasonableHours(t *testing.T) {
	sp, _ := pinnedProposer()

	// Morning primary is 10:00; the -120 alternate (08:00) must be discarded.
	pref := &models.DayTimePreference{PreferredTimeOfDay: "morning"}
	slots := sp.Propose([]models.BusyInterval{}, pref)

	for _, s := range slots {
		h := s.StartTime.Hour()
		if h < 9 || h > 22 {
			t.Errorf("slot at %v outside reasonable hours", s.StartTime)
		}
	}
}

func TestPropose_BusyEveningPushesToLaterAnchor(t *testing.T) {
	sp, now := pinnedProposer()

	// Partner busy 19:00-21:00 tomorrow.
	tomorrow := now.AddDate(0, 0, 1)
	busyStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 19, 0, 0, 0, time.UTC)
	busy := []models.BusyInterval{
		{StartTime: busyStart, EndTime: busyStart.Add(2 * time.Hour), Shareable: true},
	}
	pref := &models.DayTimePreference{PreferredTimeOfDay: "evening"}

	slots := sp.Propose(busy, pref)

	assert.NotEmpty(t, slots)
	// 19:00 tomorrow must not be proposed; 21:00 is the first anchor whose
	// 3-hour window clears the busy block.
	want := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 21, 0, 0, 0, time.UTC)
	assert.Equal(t, want, slots[0].StartTime)
	for _, s := range slots {
		if s.StartTime.Equal(busyStart) {
			t.Errorf("proposed the busy 19:00 anchor")
		}
	}
}

func TestPropose_NoSlotOverlapsBusyOrOtherSlots(t *testing.T) {
	sp, now := pinnedProposer()

	day1 := now.AddDate(0, 0, 1)
	day2 := now.AddDate(0, 0, 2)
	busy := []models.BusyInterval{
		{
			StartTime: time.Date(day1.Year(), day1.Month(), day1.Day(), 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(day1.Year(), day1.Month(), day1.Day(), 20, 0, 0, 0, time.UTC),
			Shareable: true,
		},
		{
			StartTime: time.Date(day2.Year(), day2.Month(), day2.Day(), 13, 0, 0, 0, time.UTC),
			EndTime:   time.Date(day2.Year(), day2.Month(), day2.Day(), 15, 0, 0, 0, time.UTC),
			Shareable: true,
		},
	}
	pref := &models.DayTimePreference{PreferredTimeOfDay: "afternoon"}

	slots := sp.Propose(busy, pref)

	for i, s := range slots {
		for _, iv := range busy {
			if iv.Overlaps(s.StartTime, s.EndTime()) {
				t.Errorf("slot %v overlaps busy interval %v", s.StartTime, iv.StartTime)
			}
		}
		for j := i + 1; j < len(slots); j++ {
			other := slots[j]
			if s.StartTime.Before(other.EndTime()) && s.EndTime().After(other.StartTime) {
				t.Errorf("slots %v and %v overlap", s.StartTime, other.StartTime)
			}
		}
	}
}

func TestPropose_DayMatchingIsCaseInsensitive(t *testing.T) {
	sp, _ := pinnedProposer()

	pref := &models.DayTimePreference{
		PreferredDays:      []string{"friday", "SATURDAY"},
		PreferredTimeOfDay: "evening",
	}
	slots := sp.Propose([]models.BusyInterval{}, pref)

	assert.NotEmpty(t, slots)
	for _, s := range slots {
		day := strings.ToLower(s.StartTime.Weekday().String())
		if day != "friday" && day != "saturday" {
			t.Errorf("slot on unexpected day %s", day)
		}
	}
}
