package scheduling

import "time"

// intervalsOverlap reports whether interval a intersects interval b,
// including full containment. The three clauses are: a starts inside b,
// a ends inside b, or a fully contains b. All occupancy checks in the
// calculator go through this one predicate so the boundary behavior cannot
// drift between them.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	// a starts inside b: aStart >= bStart && aStart < bEnd
	if !aStart.Before(bStart) && aStart.Before(bEnd) {
		return true
	}
	// a ends inside b: aEnd > bStart && aEnd <= bEnd
	if aEnd.After(bStart) && !aEnd.After(bEnd) {
		return true
	}
	// a contains b: aStart <= bStart && aEnd >= bEnd
	if !aStart.After(bStart) && !aEnd.Before(bEnd) {
		return true
	}
	return false
}

// atClock anchors a wall-clock "HH:MM" string onto the given calendar day.
// Malformed strings report ok=false and the window is skipped.
func atClock(day time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), true
}
