package models

import (
	"time"

	"github.com/google/uuid"
)

type CaseEvent struct {
	Id            uuid.UUID
	CaseId        uuid.UUID
	UserId        UserId
	CreatedAt     time.Time
	EventType     CaseEventType
	NewValue      string
	PreviousValue string
}

type CaseEventType string

const (
	CaseCreated          CaseEventType = "case_created"
	CaseSubmittedEvent   CaseEventType = "case_submitted"
	MeetingAssigned      CaseEventType = "meeting_assigned"
	MeetingReassigned    CaseEventType = "meeting_reassigned"
	MeetingUnassigned    CaseEventType = "meeting_unassigned"
	ConsensusRecorded    CaseEventType = "consensus_recorded"
	ConsensusUpdated     CaseEventType = "consensus_updated"
	CaseResubmittedEvent CaseEventType = "case_resubmitted"
	CaseArchivedEvent    CaseEventType = "case_archived"
	UnknownEvent         CaseEventType = "unknown_event"
)

func CaseEventTypeFrom(s string) CaseEventType {
	switch CaseEventType(s) {
	case CaseCreated, CaseSubmittedEvent, MeetingAssigned, MeetingReassigned,
		MeetingUnassigned, ConsensusRecorded, ConsensusUpdated,
		CaseResubmittedEvent, CaseArchivedEvent:
		return CaseEventType(s)
	}
	return UnknownEvent
}

type CreateCaseEventAttributes struct {
	CaseId        uuid.UUID
	UserId        UserId
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
}
