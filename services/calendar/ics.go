// File: services/calendar/ics.go
package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"coachdesk/config"
	"coachdesk/models"
	"coachdesk/utils"

	"github.com/emersion/go-ical"
	"go.uber.org/zap"
)

// BusyFetcher pulls occupied intervals from a coach's connected external
// calendar. Implementations are best-effort: callers swallow errors and
// degrade to "no external busy times".
type BusyFetcher interface {
	FetchBusy(ctx context.Context, feedURL string, from, to time.Time) ([]models.BusyInterval, error)
}

// ICSFetcher fetches an ICS feed over HTTP and extracts VEVENT intervals.
type ICSFetcher struct {
	Client *http.Client
}

// NewICSFetcher constructs an ICSFetcher with the configured fetch timeout.
func NewICSFetcher() *ICSFetcher {
	timeout := time.Duration(config.AppConfig.CalendarFetchTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ICSFetcher{
		Client: &http.Client{Timeout: timeout},
	}
}

// FetchBusy downloads the feed and returns the busy intervals that intersect
// [from, to], clipped to that range. Events without both a start and an end
// are skipped.
func (f *ICSFetcher) FetchBusy(ctx context.Context, feedURL string, from, to time.Time) ([]models.BusyInterval, error) {
	logger := utils.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar feed returned status %d", resp.StatusCode)
	}

	busy, err := decodeBusyIntervals(resp.Body, from, to)
	if err != nil {
		return nil, err
	}

	logger.Debug("fetched external busy intervals",
		zap.Int("count", len(busy)),
		zap.Time("from", from),
		zap.Time("to", to))
	return busy, nil
}

func decodeBusyIntervals(r io.Reader, from, to time.Time) ([]models.BusyInterval, error) {
	decoder := ical.NewDecoder(r)
	busy := []models.BusyInterval{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			startProp := comp.Props.Get(ical.PropDateTimeStart)
			endProp := comp.Props.Get(ical.PropDateTimeEnd)
			if startProp == nil || endProp == nil {
				continue
			}
			start, err := startProp.DateTime(from.Location())
			if err != nil {
				continue
			}
			end, err := endProp.DateTime(from.Location())
			if err != nil {
				continue
			}
			if !end.After(start) {
				continue
			}

			// Keep only intervals that intersect the query range, clipped to it.
			if !start.Before(to) || !end.After(from) {
				continue
			}
			if start.Before(from) {
				start = from
			}
			if end.After(to) {
				end = to
			}
			busy = append(busy, models.BusyInterval{Start: start, End: end})
		}
	}

	return busy, nil
}
