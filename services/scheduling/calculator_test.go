package scheduling

import (
	"reflect"
	"testing"
	"time"

	"coachdesk/models"
)

// 2026-03-02 is a Monday.
func monday() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func weekdaysOnly(windows ...models.TimeWindow) models.WeeklySchedule {
	schedule := models.WeeklySchedule{}
	for day := 1; day <= 5; day++ {
		schedule[weekdayKey(day)] = windows
	}
	return schedule
}

func weekdayKey(day int) string {
	return string(rune('0' + day))
}

func TestWindowRemainderIsDropped(t *testing.T) {
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "10:00"}}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, nil, 30, 15, nil)

	// 09:45 would need the window to extend to 10:15, so only one slot fits.
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d: %v", len(slots), slots)
	}
	want := monday().Add(9 * time.Hour)
	if !slots[0].Start.Equal(want) || !slots[0].End.Equal(want.Add(30*time.Minute)) {
		t.Fatalf("unexpected slot: %+v", slots[0])
	}
}

func TestSlotDurationIsExact(t *testing.T) {
	av := models.Availability{WeeklySchedule: weekdaysOnly(models.TimeWindow{Start: "09:00", End: "17:00"})}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday().AddDate(0, 0, 4), now, av, nil, 45, 10, nil)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	for _, slot := range slots {
		if slot.End.Sub(slot.Start) != 45*time.Minute {
			t.Fatalf("slot %v has duration %v, want 45m", slot.Start, slot.End.Sub(slot.Start))
		}
		if slot.Duration != 45 {
			t.Fatalf("slot %v reports duration %d, want 45", slot.Start, slot.Duration)
		}
	}
}

func TestWeekdayWithoutScheduleYieldsNoSlots(t *testing.T) {
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "17:00"}}},
	}
	now := monday().Add(-24 * time.Hour)
	tuesday := monday().AddDate(0, 0, 1)

	slots := CalculateAvailableSlots(tuesday, tuesday, now, av, nil, 60, 0, nil)
	if len(slots) != 0 {
		t.Fatalf("expected no slots on an unscheduled weekday, got %d", len(slots))
	}
}

func TestMinNoticeFilterIsStrict(t *testing.T) {
	av := models.Availability{
		WeeklySchedule: weekdaysOnly(models.TimeWindow{Start: "00:00", End: "23:00"}),
		MinNoticeHours: 24,
	}
	now := monday().Add(10 * time.Hour)
	cutoff := now.Add(24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday().AddDate(0, 0, 3), now, av, nil, 60, 0, nil)
	if len(slots) == 0 {
		t.Fatal("expected slots after the notice cutoff")
	}
	for _, slot := range slots {
		if !slot.Start.After(cutoff) {
			t.Fatalf("slot %v does not respect min notice cutoff %v", slot.Start, cutoff)
		}
	}
}

func TestBlockedSlotSplitsDay(t *testing.T) {
	blockStart := monday().Add(14 * time.Hour)
	blockEnd := monday().Add(16 * time.Hour)
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "18:00"}}},
		BlockedSlots:   []models.BlockedSlot{{ID: "b1", Start: blockStart, End: blockEnd}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, nil, 60, 0, nil)

	// Hourly candidates 09:00..17:00; 14:00 and 15:00 are blocked.
	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d: %v", len(slots), slots)
	}
	for _, slot := range slots {
		if intervalsOverlap(slot.Start, slot.End, blockStart, blockEnd) {
			t.Fatalf("slot %v overlaps the blocked range", slot.Start)
		}
	}
	// Booking resumes exactly at the end of the block.
	if !slots[5].Start.Equal(blockEnd) {
		t.Fatalf("expected first post-block slot at %v, got %v", blockEnd, slots[5].Start)
	}
}

func TestExistingEventIsBufferExpanded(t *testing.T) {
	event := models.Event{
		StartDateTime: monday().Add(10 * time.Hour),
		EndDateTime:   monday().Add(11 * time.Hour),
		Status:        models.EventStatusConfirmed,
	}
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "13:00"}}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, []models.Event{event}, 30, 15, nil)

	// Candidates step by 45m: 09:00, 09:45, 10:30, 11:15, 12:00. The event
	// buffered to [09:45, 11:15] rejects 09:45 and 10:30.
	want := []time.Time{
		monday().Add(9 * time.Hour),
		monday().Add(11*time.Hour + 15*time.Minute),
		monday().Add(12 * time.Hour),
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, slot := range slots {
		if !slot.Start.Equal(want[i]) {
			t.Fatalf("slot %d: expected start %v, got %v", i, want[i], slot.Start)
		}
	}
}

func TestEventEndDerivedFromDuration(t *testing.T) {
	// No EndDateTime: a 90-minute duration must still occupy the calendar.
	event := models.Event{
		StartDateTime:   monday().Add(10 * time.Hour),
		DurationMinutes: 90,
		Status:          models.EventStatusPendingResponse,
	}
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "13:00"}}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, []models.Event{event}, 60, 0, nil)

	for _, slot := range slots {
		if intervalsOverlap(slot.Start, slot.End, event.StartDateTime, event.EffectiveEnd()) {
			t.Fatalf("slot %v overlaps the derived event interval", slot.Start)
		}
	}
	// 09:00 fits; 10:00, 11:00 collide with 10:00-11:30; 12:00 fits.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d: %v", len(slots), slots)
	}
}

func TestExternalBusyIsBufferExpanded(t *testing.T) {
	busy := []models.BusyInterval{{
		Start: monday().Add(10 * time.Hour),
		End:   monday().Add(11 * time.Hour),
	}}
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {{Start: "09:00", End: "13:00"}}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, nil, 30, 15, busy)
	for _, slot := range slots {
		if intervalsOverlap(slot.Start, slot.End, busy[0].Start.Add(-15*time.Minute), busy[0].End.Add(15*time.Minute)) {
			t.Fatalf("slot %v overlaps the buffered busy interval", slot.Start)
		}
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %v", len(slots), slots)
	}
}

func TestSlotsAreChronological(t *testing.T) {
	av := models.Availability{
		WeeklySchedule: weekdaysOnly(
			models.TimeWindow{Start: "09:00", End: "12:00"},
			models.TimeWindow{Start: "14:00", End: "17:00"},
		),
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday().AddDate(0, 0, 6), now, av, nil, 60, 0, nil)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].Start.After(slots[i-1].Start) {
			t.Fatalf("slots out of order at %d: %v then %v", i, slots[i-1].Start, slots[i].Start)
		}
	}
}

func TestCalculatorIsDeterministic(t *testing.T) {
	event := models.Event{
		StartDateTime: monday().Add(10 * time.Hour),
		EndDateTime:   monday().Add(11 * time.Hour),
	}
	av := models.Availability{
		WeeklySchedule: weekdaysOnly(models.TimeWindow{Start: "09:00", End: "17:00"}),
		BlockedSlots: []models.BlockedSlot{
			{ID: "b1", Start: monday().Add(13 * time.Hour), End: monday().Add(14 * time.Hour)},
		},
		MinNoticeHours: 4,
	}
	now := monday().Add(6 * time.Hour)

	first := CalculateAvailableSlots(monday(), monday().AddDate(0, 0, 2), now, av, []models.Event{event}, 30, 10, nil)
	second := CalculateAvailableSlots(monday(), monday().AddDate(0, 0, 2), now, av, []models.Event{event}, 30, 10, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different outputs")
	}
}

func TestMalformedWindowIsSkipped(t *testing.T) {
	av := models.Availability{
		WeeklySchedule: models.WeeklySchedule{"1": {
			{Start: "garbage", End: "10:00"},
			{Start: "11:00", End: "12:00"},
		}},
	}
	now := monday().Add(-24 * time.Hour)

	slots := CalculateAvailableSlots(monday(), monday(), now, av, nil, 60, 0, nil)
	if len(slots) != 1 {
		t.Fatalf("expected only the well-formed window to produce a slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(monday().Add(11 * time.Hour)) {
		t.Fatalf("unexpected slot start: %v", slots[0].Start)
	}
}
