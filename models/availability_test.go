package models

import (
	"testing"
	"time"
)

func TestDefaultAvailability(t *testing.T) {
	av := DefaultAvailability("org-1")

	if av.OrgID != "org-1" {
		t.Fatalf("expected orgID org-1, got %q", av.OrgID)
	}
	if av.DefaultDuration != 60 || av.BufferBetweenCalls != 15 {
		t.Fatalf("unexpected duration/buffer: %d/%d", av.DefaultDuration, av.BufferBetweenCalls)
	}
	if av.Timezone != "UTC" {
		t.Fatalf("expected UTC timezone, got %q", av.Timezone)
	}
	if av.AdvanceBookingDays != 30 || av.MinNoticeHours != 24 {
		t.Fatalf("unexpected horizon/notice: %d/%d", av.AdvanceBookingDays, av.MinNoticeHours)
	}
	if av.SyncExternalBusy {
		t.Fatal("external sync should be off by default")
	}

	for day := time.Monday; day <= time.Friday; day++ {
		windows := av.WeeklySchedule.ForWeekday(day)
		if len(windows) != 1 {
			t.Fatalf("expected one window on %v, got %d", day, len(windows))
		}
		if windows[0].Start != "09:00" || windows[0].End != "17:00" {
			t.Fatalf("unexpected window on %v: %+v", day, windows[0])
		}
	}
	if len(av.WeeklySchedule.ForWeekday(time.Saturday)) != 0 {
		t.Fatal("expected no windows on Saturday")
	}
	if len(av.WeeklySchedule.ForWeekday(time.Sunday)) != 0 {
		t.Fatal("expected no windows on Sunday")
	}
}

func TestForWeekdayMissingEntry(t *testing.T) {
	ws := WeeklySchedule{"1": {{Start: "09:00", End: "12:00"}}}

	if got := ws.ForWeekday(time.Monday); len(got) != 1 {
		t.Fatalf("expected Monday windows, got %v", got)
	}
	if got := ws.ForWeekday(time.Wednesday); got != nil {
		t.Fatalf("expected nil for a day with no entry, got %v", got)
	}
}
