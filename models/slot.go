package models

import "time"

// AvailableSlot represents one bookable window. Computed fresh on every
// request; it has no identity and is never persisted.
type AvailableSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"` // minutes
}

// BusyInterval is an absolute occupied interval pulled from a connected
// external calendar.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
