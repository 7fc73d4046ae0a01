package scheduling

import (
	"time"

	"coachdesk/models"
)

// CalculateAvailableSlots resolves a coach's bookable windows within
// [rangeStart, rangeEnd]. It layers four exclusion sources over the recurring
// weekly schedule: the minimum-notice cutoff, one-off blocked slots, already
// booked events, and busy intervals from a connected external calendar.
//
// The function is a pure transform: it performs no I/O, reads no wall clock
// (now is injected by the caller), and cannot fail on well-formed input.
// Slots are emitted day-major, window-major, time-major, so the result is
// already in chronological order.
//
// Candidate slots advance in steps of duration+buffer within each open
// window; a window remainder too short for a full call is dropped. The
// buffer expands booked events and external busy intervals on both sides,
// but blocked slots are matched raw.
func CalculateAvailableSlots(
	rangeStart, rangeEnd, now time.Time,
	availability models.Availability,
	existingEvents []models.Event,
	durationMinutes, bufferMinutes int,
	externalBusy []models.BusyInterval,
) []models.AvailableSlot {
	slots := []models.AvailableSlot{}

	duration := time.Duration(durationMinutes) * time.Minute
	buffer := time.Duration(bufferMinutes) * time.Minute
	step := duration + buffer
	if step <= 0 {
		return slots
	}
	minNotice := now.Add(time.Duration(availability.MinNoticeHours) * time.Hour)

	day := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, rangeStart.Location())
	for ; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		for _, window := range availability.WeeklySchedule.ForWeekday(day.Weekday()) {
			windowStart, ok := atClock(day, window.Start)
			if !ok {
				continue
			}
			windowEnd, ok := atClock(day, window.End)
			if !ok {
				continue
			}

			for slotStart := windowStart; !slotStart.Add(duration).After(windowEnd); slotStart = slotStart.Add(step) {
				slotEnd := slotStart.Add(duration)

				// Too soon to book: slotStart must be strictly after now+minNotice.
				if !slotStart.After(minNotice) {
					continue
				}
				if overlapsBlocked(slotStart, slotEnd, availability.BlockedSlots) {
					continue
				}
				if overlapsEvents(slotStart, slotEnd, existingEvents, buffer) {
					continue
				}
				if overlapsBusy(slotStart, slotEnd, externalBusy, buffer) {
					continue
				}

				slots = append(slots, models.AvailableSlot{
					Start:    slotStart,
					End:      slotEnd,
					Duration: durationMinutes,
				})
			}
		}
	}

	return slots
}

func overlapsBlocked(slotStart, slotEnd time.Time, blocked []models.BlockedSlot) bool {
	for _, b := range blocked {
		if intervalsOverlap(slotStart, slotEnd, b.Start, b.End) {
			return true
		}
	}
	return false
}

func overlapsEvents(slotStart, slotEnd time.Time, events []models.Event, buffer time.Duration) bool {
	for _, ev := range events {
		if intervalsOverlap(slotStart, slotEnd, ev.StartDateTime.Add(-buffer), ev.EffectiveEnd().Add(buffer)) {
			return true
		}
	}
	return false
}

func overlapsBusy(slotStart, slotEnd time.Time, busy []models.BusyInterval, buffer time.Duration) bool {
	for _, b := range busy {
		if intervalsOverlap(slotStart, slotEnd, b.Start.Add(-buffer), b.End.Add(buffer)) {
			return true
		}
	}
	return false
}
