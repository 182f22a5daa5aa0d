package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type Case struct {
	Id                     uuid.UUID
	Name                   string
	PatientReference       string
	PresentingDepartmentId uuid.UUID
	CreatedById            UserId
	Status                 CaseStatus
	AssignedMeetingId      *uuid.UUID
	SubmittedAt            *time.Time
	ReviewedAt             *time.Time
	ArchivedAt             *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Events                 []CaseEvent
	ConsensusReport        *ConsensusReport
}

func (c Case) HasAssignedMeeting() bool {
	return c.AssignedMeetingId != nil
}

type CaseStatus string

const (
	CaseDraft         CaseStatus = "draft"
	CaseSubmitted     CaseStatus = "submitted"
	CasePending       CaseStatus = "pending"
	CaseReviewed      CaseStatus = "reviewed"
	CaseResubmitted   CaseStatus = "resubmitted"
	CaseArchived      CaseStatus = "archived"
	CaseUnknownStatus CaseStatus = "unknown"
)

func (s CaseStatus) IsFinalized() bool {
	return s == CaseArchived
}

// CanTransition encodes the forward edges of the case lifecycle.
// Archival is reachable from every non-terminal status, and recording
// or correcting a consensus report reviews a case whatever its prior
// non-terminal status.
func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	if s == CaseArchived {
		return false
	}
	if slices.Contains([]CaseStatus{CaseArchived, CaseReviewed}, newStatus) {
		return true
	}

	switch s {
	case CaseDraft:
		return newStatus == CaseSubmitted
	case CaseSubmitted:
		return newStatus == CasePending
	case CasePending:
		return newStatus == CaseSubmitted
	case CaseReviewed:
		return newStatus == CaseResubmitted
	case CaseResubmitted:
		// falls back to submitted when its meeting is unassigned
		return newStatus == CaseSubmitted
	default:
		return false
	}
}

func CaseStatusFrom(s string) CaseStatus {
	switch CaseStatus(s) {
	case CaseDraft, CaseSubmitted, CasePending, CaseReviewed, CaseResubmitted, CaseArchived:
		return CaseStatus(s)
	}
	return CaseUnknownStatus
}

func ValidateCaseStatuses(statuses []string) ([]CaseStatus, error) {
	sanitizedStatuses := make([]CaseStatus, len(statuses))
	for i, status := range statuses {
		sanitizedStatuses[i] = CaseStatusFrom(status)
		if sanitizedStatuses[i] == CaseUnknownStatus {
			return []CaseStatus{}, fmt.Errorf("invalid status: %s %w", status, BadParameterError)
		}
	}
	return sanitizedStatuses, nil
}

type CreateCaseAttributes struct {
	Name                   string
	PatientReference       string
	PresentingDepartmentId uuid.UUID
}

type UpdateCaseAttributes struct {
	Id               uuid.UUID
	Name             string
	PatientReference string
}

type CaseFilters struct {
	Statuses     []CaseStatus
	DepartmentId *uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
}

// CaseTransition is the single write applied by every lifecycle
// operation: the new status plus the columns that move with it. Nil
// pointers leave the column untouched; assignment changes are explicit
// so that unassignment can null the column.
type CaseTransition struct {
	CaseId          uuid.UUID
	Status          CaseStatus
	AssignMeetingId *uuid.UUID
	ClearMeeting    bool
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	ArchivedAt      *time.Time
}

// ValidateFrom checks the transition against the lifecycle edges before
// it is written. A transition that keeps the current status (meeting
// assignment changes, consensus corrections on a reviewed case) is
// always legal.
func (t CaseTransition) ValidateFrom(current CaseStatus) error {
	if t.Status == current {
		return nil
	}
	if !current.CanTransition(t.Status) {
		return errors.Wrap(ErrCaseStatusTransitionNotAllowed,
			fmt.Sprintf("case status cannot change from %s to %s", current, t.Status))
	}
	return nil
}
