package models

import "time"

// IntakeConfig is a funnel-specific scheduling configuration used on the
// unauthenticated funnel booking path. Inactive configs are invisible to the
// funnel endpoints.
type IntakeConfig struct {
	ID              string    `bson:"id" json:"id"`
	OrgID           string    `bson:"orgId" json:"orgId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`

	// Optional per-funnel overrides of the organization availability record.
	BufferMinutes      *int `bson:"bufferMinutes,omitempty" json:"bufferMinutes,omitempty"`
	MinNoticeHours     *int `bson:"minNoticeHours,omitempty" json:"minNoticeHours,omitempty"`
	AdvanceBookingDays *int `bson:"advanceBookingDays,omitempty" json:"advanceBookingDays,omitempty"`
}

// IntakeConfigRequest defines the payload for creating or updating an intake config.
type IntakeConfigRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=5"`
	Active          *bool  `json:"active"`

	BufferMinutes      *int `json:"bufferMinutes"`
	MinNoticeHours     *int `json:"minNoticeHours"`
	AdvanceBookingDays *int `json:"advanceBookingDays"`
}

// FunnelBookingRequest defines the payload for booking a slot through a funnel.
type FunnelBookingRequest struct {
	IntakeConfigID string    `json:"intakeConfigId" binding:"required"`
	ClientName     string    `json:"clientName" binding:"required"`
	ClientEmail    string    `json:"clientEmail" binding:"required,email"`
	StartDateTime  time.Time `json:"startDateTime" binding:"required"`
	Notes          string    `json:"notes"`
}
