package handlers

import (
	"testing"
	"time"
)

func TestParseDateParam(t *testing.T) {
	got, err := parseDateParam("2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = parseDateParam("2026-03-02T09:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := parseDateParam("02/03/2026"); err == nil {
		t.Fatal("expected error for unsupported date format")
	}
}

func TestParseDurationParam(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"30", 30, false},
		{"90", 90, false},
		{"30x", 0, true},
		{"x30", 0, true},
		{"", 0, true},
		{"0", 0, true},
		{"-15", 0, true},
		{"30.5", 0, true},
	}

	for _, tc := range cases {
		got, err := parseDurationParam(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseDurationParam(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseDurationParam(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseDurationParam(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
