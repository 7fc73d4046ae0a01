package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	eventRepo "coachdesk/database/repository/event"
	intakeRepo "coachdesk/database/repository/intake"
	"coachdesk/models"
	"coachdesk/services/availability"
	"coachdesk/services/calendar"
	"coachdesk/utils"

	"go.uber.org/zap"
)

// MaxQuerySpanDays caps how wide a single slot query may be.
const MaxQuerySpanDays = 60

var (
	// ErrIntakeConfigNotFound is returned when a funnel references an unknown
	// or inactive intake config.
	ErrIntakeConfigNotFound = errors.New("intake config not found or inactive")
	// ErrSlotUnavailable is returned when a booking targets a slot the
	// calculator no longer offers.
	ErrSlotUnavailable = errors.New("requested slot is no longer available")
)

// SlotQuery describes one available-slots request.
type SlotQuery struct {
	OrgID           string
	Start           time.Time
	End             time.Time
	DurationMinutes int // 0 means use the availability record's default
}

// SlotResult is the resolved slot list plus the settings it was computed with.
type SlotResult struct {
	Slots    []models.AvailableSlot `json:"slots"`
	Timezone string                 `json:"timezone"`
	Duration int                    `json:"duration"`
	Buffer   int                    `json:"buffer"`
}

// SchedulingService exposes slot resolution and event booking.
type SchedulingService interface {
	GetAvailableSlots(ctx context.Context, q SlotQuery) (*SlotResult, error)
	GetFunnelSlots(ctx context.Context, intakeConfigID string, start, end time.Time) (*SlotResult, error)
	BookFunnelSlot(ctx context.Context, req models.FunnelBookingRequest) (*models.Event, error)
	CreateEvent(ctx context.Context, orgID string, req models.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error)
	CancelEvent(ctx context.Context, orgID, eventID string) error
}

// DefaultSchedulingService is the production SchedulingService.
type DefaultSchedulingService struct {
	AvailabilitySvc availability.AvailabilityService
	EventRepo       eventRepo.EventRepository
	IntakeRepo      intakeRepo.IntakeConfigRepository
	BusyFetcher     calendar.BusyFetcher

	// Now is injected for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) currentTime() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, q SlotQuery) (*SlotResult, error) {
	av, err := s.AvailabilitySvc.GetOrCreate(ctx, q.OrgID)
	if err != nil {
		return nil, err
	}

	duration := q.DurationMinutes
	if duration <= 0 {
		duration = av.DefaultDuration
	}
	buffer := av.BufferBetweenCalls

	slots, err := s.computeSlots(ctx, *av, q.Start, q.End, duration, buffer)
	if err != nil {
		return nil, err
	}

	return &SlotResult{
		Slots:    slots,
		Timezone: av.Timezone,
		Duration: duration,
		Buffer:   buffer,
	}, nil
}

func (s *DefaultSchedulingService) GetFunnelSlots(ctx context.Context, intakeConfigID string, start, end time.Time) (*SlotResult, error) {
	cfg, av, err := s.resolveIntake(ctx, intakeConfigID)
	if err != nil {
		return nil, err
	}

	buffer := av.BufferBetweenCalls
	if cfg.BufferMinutes != nil {
		buffer = *cfg.BufferMinutes
	}

	slots, err := s.computeSlots(ctx, *av, start, end, cfg.DurationMinutes, buffer)
	if err != nil {
		return nil, err
	}

	return &SlotResult{
		Slots:    slots,
		Timezone: av.Timezone,
		Duration: cfg.DurationMinutes,
		Buffer:   buffer,
	}, nil
}

func (s *DefaultSchedulingService) BookFunnelSlot(ctx context.Context, req models.FunnelBookingRequest) (*models.Event, error) {
	cfg, av, err := s.resolveIntake(ctx, req.IntakeConfigID)
	if err != nil {
		return nil, err
	}

	buffer := av.BufferBetweenCalls
	if cfg.BufferMinutes != nil {
		buffer = *cfg.BufferMinutes
	}

	// Re-run the calculator over the requested day and require the slot to
	// still be offered. A race with a concurrent booking is accepted; the
	// first insert wins the coach's attention.
	dayStart := req.StartDateTime.Truncate(24 * time.Hour)
	slots, err := s.computeSlots(ctx, *av, dayStart, dayStart.AddDate(0, 0, 1), cfg.DurationMinutes, buffer)
	if err != nil {
		return nil, err
	}
	offered := false
	for _, slot := range slots {
		if slot.Start.Equal(req.StartDateTime) {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotUnavailable
	}

	event := models.Event{
		OrgID:           cfg.OrgID,
		Title:           cfg.Name,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		StartDateTime:   req.StartDateTime,
		EndDateTime:     req.StartDateTime.Add(time.Duration(cfg.DurationMinutes) * time.Minute),
		DurationMinutes: cfg.DurationMinutes,
		Status:          models.EventStatusPendingResponse,
		Source:          models.EventSourceFunnel,
		IntakeConfigID:  cfg.ID,
		Notes:           req.Notes,
	}
	if err := s.EventRepo.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create funnel event: %w", err)
	}

	utils.GetLogger().Info("funnel slot booked",
		zap.String("orgID", cfg.OrgID),
		zap.String("intakeConfigID", cfg.ID),
		zap.Time("start", req.StartDateTime))
	return &event, nil
}

func (s *DefaultSchedulingService) CreateEvent(ctx context.Context, orgID string, req models.CreateEventRequest) (*models.Event, error) {
	av, err := s.AvailabilitySvc.GetOrCreate(ctx, orgID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = av.DefaultDuration
	}

	event := models.Event{
		OrgID:           orgID,
		Title:           req.Title,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		StartDateTime:   req.StartDateTime,
		EndDateTime:     req.StartDateTime.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		Status:          models.EventStatusConfirmed,
		Source:          models.EventSourceDirect,
		Notes:           req.Notes,
	}
	if err := s.EventRepo.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *DefaultSchedulingService) ListEvents(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error) {
	return s.EventRepo.ListByOrg(ctx, orgID, from, to)
}

func (s *DefaultSchedulingService) CancelEvent(ctx context.Context, orgID, eventID string) error {
	return s.EventRepo.UpdateStatus(ctx, orgID, eventID, models.EventStatusCancelled)
}

// resolveIntake loads an active intake config and the owning organization's
// availability, with the config's optional overrides applied.
func (s *DefaultSchedulingService) resolveIntake(ctx context.Context, intakeConfigID string) (*models.IntakeConfig, *models.Availability, error) {
	cfg, err := s.IntakeRepo.GetByID(ctx, intakeConfigID)
	if err != nil || cfg == nil || !cfg.Active {
		return nil, nil, ErrIntakeConfigNotFound
	}

	av, err := s.AvailabilitySvc.GetOrCreate(ctx, cfg.OrgID)
	if err != nil {
		return nil, nil, err
	}

	effective := *av
	if cfg.MinNoticeHours != nil {
		effective.MinNoticeHours = *cfg.MinNoticeHours
	}
	if cfg.AdvanceBookingDays != nil {
		effective.AdvanceBookingDays = *cfg.AdvanceBookingDays
	}
	return cfg, &effective, nil
}

// computeSlots clamps the range to the advance-booking horizon, gathers
// occupancy sources (events and external busy times run concurrently, they
// have no ordering dependency), then invokes the pure calculator.
func (s *DefaultSchedulingService) computeSlots(ctx context.Context, av models.Availability, start, end time.Time, durationMinutes, bufferMinutes int) ([]models.AvailableSlot, error) {
	logger := utils.GetLogger()
	now := s.currentTime()

	horizon := now.AddDate(0, 0, av.AdvanceBookingDays)
	if end.After(horizon) {
		end = horizon
	}
	if end.Before(start) {
		return []models.AvailableSlot{}, nil
	}

	var (
		wg        sync.WaitGroup
		events    []models.Event
		eventsErr error
		busy      []models.BusyInterval
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		// Pad a day on each side so buffered overlaps at the range edges are
		// still caught.
		events, eventsErr = s.EventRepo.ListOccupying(ctx, av.OrgID, start.AddDate(0, 0, -1), end.AddDate(0, 0, 1))
	}()

	if av.SyncExternalBusy && av.ExternalCalendarURL != "" && s.BusyFetcher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetched, err := s.BusyFetcher.FetchBusy(ctx, av.ExternalCalendarURL, start, end.AddDate(0, 0, 1))
			if err != nil {
				// Best-effort: a calendar outage degrades to "no busy times".
				logger.Warn("external calendar fetch failed, ignoring busy times",
					zap.String("orgID", av.OrgID), zap.Error(err))
				return
			}
			busy = fetched
		}()
	}

	wg.Wait()
	if eventsErr != nil {
		return nil, fmt.Errorf("failed to fetch existing events: %w", eventsErr)
	}

	return CalculateAvailableSlots(start, end, now, av, events, durationMinutes, bufferMinutes, busy), nil
}
