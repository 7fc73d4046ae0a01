package models

import (
	"testing"
	"time"
)

func TestEffectiveEnd(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	explicit := Event{StartDateTime: start, EndDateTime: start.Add(45 * time.Minute)}
	if got := explicit.EffectiveEnd(); !got.Equal(start.Add(45 * time.Minute)) {
		t.Fatalf("expected explicit end to win, got %v", got)
	}

	derived := Event{StartDateTime: start, DurationMinutes: 90}
	if got := derived.EffectiveEnd(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("expected end derived from duration, got %v", got)
	}

	fallback := Event{StartDateTime: start}
	if got := fallback.EffectiveEnd(); !got.Equal(start.Add(60 * time.Minute)) {
		t.Fatalf("expected 60-minute fallback, got %v", got)
	}
}
