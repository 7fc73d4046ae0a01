package models

import (
	"strconv"
	"time"
)

// TimeWindow is a recurring open window within a single weekday, expressed as
// wall-clock "HH:MM" strings in the organization's timezone.
type TimeWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklySchedule maps a weekday ("0"=Sunday .. "6"=Saturday) to its ordered
// open windows. Keys are strings because BSON map keys must be strings.
type WeeklySchedule map[string][]TimeWindow

// ForWeekday returns the open windows for the given weekday. A weekday with
// no entry contributes zero windows.
func (ws WeeklySchedule) ForWeekday(day time.Weekday) []TimeWindow {
	return ws[strconv.Itoa(int(day))]
}

// BlockedSlot is a one-off unavailable interval layered on top of the weekly
// schedule (e.g., vacation).
type BlockedSlot struct {
	ID     string    `bson:"id" json:"id"`
	Start  time.Time `bson:"start" json:"start"`
	End    time.Time `bson:"end" json:"end"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Availability is the per-organization scheduling configuration.
type Availability struct {
	OrgID               string         `bson:"orgId" json:"orgId"`
	WeeklySchedule      WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	BlockedSlots        []BlockedSlot  `bson:"blockedSlots,omitempty" json:"blockedSlots"`
	DefaultDuration     int            `bson:"defaultDuration" json:"defaultDuration"`       // minutes
	BufferBetweenCalls  int            `bson:"bufferBetweenCalls" json:"bufferBetweenCalls"` // minutes
	Timezone            string         `bson:"timezone" json:"timezone"`
	AdvanceBookingDays  int            `bson:"advanceBookingDays" json:"advanceBookingDays"`
	MinNoticeHours      int            `bson:"minNoticeHours" json:"minNoticeHours"`
	SyncExternalBusy    bool           `bson:"syncExternalBusy" json:"syncExternalBusy"`
	ExternalCalendarURL string         `bson:"externalCalendarUrl,omitempty" json:"externalCalendarUrl,omitempty"`
	CreatedAt           time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAvailability returns the schedule synthesized on first access for an
// organization that has never configured availability: Monday through Friday
// 09:00-17:00, 60-minute calls, 15-minute buffer, UTC, 30-day booking
// horizon, 24-hour minimum notice, external calendar sync off.
func DefaultAvailability(orgID string) Availability {
	now := time.Now()
	schedule := WeeklySchedule{}
	for day := 1; day <= 5; day++ {
		schedule[strconv.Itoa(day)] = []TimeWindow{{Start: "09:00", End: "17:00"}}
	}
	return Availability{
		OrgID:              orgID,
		WeeklySchedule:     schedule,
		BlockedSlots:       []BlockedSlot{},
		DefaultDuration:    60,
		BufferBetweenCalls: 15,
		Timezone:           "UTC",
		AdvanceBookingDays: 30,
		MinNoticeHours:     24,
		SyncExternalBusy:   false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// AvailabilityUpdate carries the mutable settings fields. Pointer fields are
// applied only when set.
type AvailabilityUpdate struct {
	WeeklySchedule      *WeeklySchedule `json:"weeklySchedule,omitempty"`
	DefaultDuration     *int            `json:"defaultDuration,omitempty"`
	BufferBetweenCalls  *int            `json:"bufferBetweenCalls,omitempty"`
	Timezone            *string         `json:"timezone,omitempty"`
	AdvanceBookingDays  *int            `json:"advanceBookingDays,omitempty"`
	MinNoticeHours      *int            `json:"minNoticeHours,omitempty"`
	SyncExternalBusy    *bool           `json:"syncExternalBusy,omitempty"`
	ExternalCalendarURL *string         `json:"externalCalendarUrl,omitempty"`
}
