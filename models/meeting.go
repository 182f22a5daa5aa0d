package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is read-mostly from the engine's perspective: its date and
// status gate assignment and drive the stale case sweep.
type Meeting struct {
	Id        uuid.UUID
	Title     string
	Date      time.Time
	Status    MeetingStatus
	CreatedAt time.Time
}

type MeetingStatus string

const (
	MeetingScheduled     MeetingStatus = "scheduled"
	MeetingCompleted     MeetingStatus = "completed"
	MeetingCancelled     MeetingStatus = "cancelled"
	MeetingUnknownStatus MeetingStatus = "unknown"
)

func MeetingStatusFrom(s string) MeetingStatus {
	switch MeetingStatus(s) {
	case MeetingScheduled, MeetingCompleted, MeetingCancelled:
		return MeetingStatus(s)
	}
	return MeetingUnknownStatus
}

// AcceptsAssignments tells whether a case may be submitted to or
// assigned to this meeting.
func (m Meeting) AcceptsAssignments() bool {
	return m.Status == MeetingScheduled
}

type MeetingFilters struct {
	UpcomingOnly bool
	Statuses     []MeetingStatus
}
