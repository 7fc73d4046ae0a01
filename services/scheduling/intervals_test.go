package scheduling

import (
	"testing"
	"time"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"disjoint after", at(13, 0), at(14, 0), at(11, 0), at(12, 0), false},
		{"a starts inside b", at(11, 30), at(12, 30), at(11, 0), at(12, 0), true},
		{"a ends inside b", at(10, 30), at(11, 30), at(11, 0), at(12, 0), true},
		{"a contains b", at(10, 0), at(13, 0), at(11, 0), at(12, 0), true},
		{"b contains a", at(11, 15), at(11, 45), at(11, 0), at(12, 0), true},
		{"identical", at(11, 0), at(12, 0), at(11, 0), at(12, 0), true},
		{"a ends where b starts", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"a starts where b ends", at(12, 0), at(13, 0), at(11, 0), at(12, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := intervalsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("intervalsOverlap(%v, %v, %v, %v) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestAtClock(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, ok := atClock(day, "09:30")
	if !ok {
		t.Fatal("expected valid clock string to parse")
	}
	if want := day.Add(9*time.Hour + 30*time.Minute); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, ok := atClock(day, "9am"); ok {
		t.Fatal("expected malformed clock string to be rejected")
	}
}
