package models

import "time"

// Event statuses. Confirmed, pending_response and proposed events occupy
// calendar time; cancelled and completed events do not.
const (
	EventStatusConfirmed       = "confirmed"
	EventStatusPendingResponse = "pending_response"
	EventStatusProposed        = "proposed"
	EventStatusCancelled       = "cancelled"
	EventStatusCompleted       = "completed"
)

// Event sources.
const (
	EventSourceDirect = "direct"
	EventSourceFunnel = "funnel"
)

// OccupyingStatuses lists the statuses that hold calendar time and therefore
// exclude conflicting slots.
var OccupyingStatuses = []string{
	EventStatusConfirmed,
	EventStatusPendingResponse,
	EventStatusProposed,
}

// Event is a scheduled call between a coach and a client.
type Event struct {
	ID              string    `bson:"id" json:"id"`
	OrgID           string    `bson:"orgId" json:"orgId"`
	Title           string    `bson:"title,omitempty" json:"title,omitempty"`
	ClientName      string    `bson:"clientName,omitempty" json:"clientName,omitempty"`
	ClientEmail     string    `bson:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	StartDateTime   time.Time `bson:"startDateTime" json:"startDateTime"`
	EndDateTime     time.Time `bson:"endDateTime,omitempty" json:"endDateTime,omitzero"`
	DurationMinutes int       `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Status          string    `bson:"status" json:"status"`
	Source          string    `bson:"source,omitempty" json:"source,omitempty"`
	IntakeConfigID  string    `bson:"intakeConfigId,omitempty" json:"intakeConfigId,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveEnd returns the event's end time, deriving it from
// DurationMinutes (default 60) when EndDateTime is unset.
func (e Event) EffectiveEnd() time.Time {
	if !e.EndDateTime.IsZero() {
		return e.EndDateTime
	}
	duration := e.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	return e.StartDateTime.Add(time.Duration(duration) * time.Minute)
}

// CreateEventRequest defines the payload for creating an event directly.
type CreateEventRequest struct {
	Title           string    `json:"title"`
	ClientName      string    `json:"clientName" binding:"required"`
	ClientEmail     string    `json:"clientEmail" binding:"required,email"`
	StartDateTime   time.Time `json:"startDateTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
}
