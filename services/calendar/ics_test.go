package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Example//Calendar//EN
BEGIN:VEVENT
UID:evt-1
DTSTAMP:20260301T000000Z
DTSTART:20260302T100000Z
DTEND:20260302T110000Z
SUMMARY:Standup
END:VEVENT
BEGIN:VEVENT
UID:evt-2
DTSTAMP:20260301T000000Z
DTSTART:20260301T100000Z
DTEND:20260302T010000Z
SUMMARY:Spills into the range
END:VEVENT
BEGIN:VEVENT
UID:evt-3
DTSTAMP:20260301T000000Z
DTSTART:20260310T100000Z
DTEND:20260310T110000Z
SUMMARY:Out of range
END:VEVENT
BEGIN:VEVENT
UID:evt-4
DTSTAMP:20260301T000000Z
DTSTART:20260302T120000Z
SUMMARY:No end
END:VEVENT
END:VCALENDAR
`

func TestDecodeBusyIntervals(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	busy, err := decodeBusyIntervals(strings.NewReader(sampleFeed), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("expected 2 busy intervals, got %d: %v", len(busy), busy)
	}

	if !busy[0].Start.Equal(from.Add(10*time.Hour)) || !busy[0].End.Equal(from.Add(11*time.Hour)) {
		t.Fatalf("unexpected first interval: %+v", busy[0])
	}
	// The spillover event is clipped to the query start.
	if !busy[1].Start.Equal(from) || !busy[1].End.Equal(from.Add(time.Hour)) {
		t.Fatalf("expected spillover clipped to range start, got %+v", busy[1])
	}
}

func TestDecodeBusyIntervalsMalformedFeed(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	if _, err := decodeBusyIntervals(strings.NewReader("not a calendar"), from, to); err == nil {
		t.Fatal("expected error for malformed feed")
	}
}

func TestFetchBusy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	fetcher := &ICSFetcher{Client: srv.Client()}
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	busy, err := fetcher.FetchBusy(context.Background(), srv.URL, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("expected 2 busy intervals, got %d", len(busy))
	}
}

func TestFetchBusyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	fetcher := &ICSFetcher{Client: srv.Client()}
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if _, err := fetcher.FetchBusy(context.Background(), srv.URL, from, from.AddDate(0, 0, 1)); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
