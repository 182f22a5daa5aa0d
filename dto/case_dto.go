package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type Case struct {
	Id                     uuid.UUID           `json:"id"`
	Name                   string              `json:"name"`
	PatientReference       string              `json:"patient_reference"`
	PresentingDepartmentId uuid.UUID           `json:"presenting_department_id"`
	CreatedById            uuid.UUID           `json:"created_by_id"`
	Status                 string              `json:"status"`
	AssignedMeetingId      *uuid.UUID          `json:"assigned_meeting_id,omitempty"`
	SubmittedAt            null.Time           `json:"submitted_at"`
	ReviewedAt             null.Time           `json:"reviewed_at"`
	ArchivedAt             null.Time           `json:"archived_at"`
	CreatedAt              time.Time           `json:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at"`
	Events                 []CaseEvent         `json:"events,omitempty"`
	ConsensusReport        *ConsensusReportDto `json:"consensus_report,omitempty"`
}

func AdaptCaseDto(c models.Case) Case {
	dto := Case{
		Id:                     c.Id,
		Name:                   c.Name,
		PatientReference:       c.PatientReference,
		PresentingDepartmentId: c.PresentingDepartmentId,
		CreatedById:            c.CreatedById,
		Status:                 string(c.Status),
		AssignedMeetingId:      c.AssignedMeetingId,
		SubmittedAt:            null.TimeFromPtr(c.SubmittedAt),
		ReviewedAt:             null.TimeFromPtr(c.ReviewedAt),
		ArchivedAt:             null.TimeFromPtr(c.ArchivedAt),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
	if len(c.Events) > 0 {
		dto.Events = make([]CaseEvent, len(c.Events))
		for i, event := range c.Events {
			dto.Events[i] = AdaptCaseEventDto(event)
		}
	}
	if c.ConsensusReport != nil {
		report := AdaptConsensusReportDto(*c.ConsensusReport)
		dto.ConsensusReport = &report
	}
	return dto
}

type CreateCaseBody struct {
	Name                   string    `json:"name" binding:"required"`
	PatientReference       string    `json:"patient_reference" binding:"required"`
	PresentingDepartmentId uuid.UUID `json:"presenting_department_id" binding:"required"`
}

type UpdateCaseBody struct {
	Name             string `json:"name" binding:"required"`
	PatientReference string `json:"patient_reference" binding:"required"`
}

type SubmitCaseBody struct {
	MeetingId uuid.UUID `json:"meeting_id" binding:"required"`
}

type ResubmitCaseBody struct {
	MeetingId *uuid.UUID `json:"meeting_id"`
}

type AssignMeetingBody struct {
	MeetingId uuid.UUID `json:"meeting_id" binding:"required"`
}

type ReassignMeetingBody struct {
	MeetingId *uuid.UUID `json:"meeting_id"`
}

type CaseFilters struct {
	Statuses     []string   `form:"statuses[]" binding:"omitempty,dive,case_status"`
	DepartmentId *uuid.UUID `form:"department_id"`
	StartDate    time.Time  `form:"start_date" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate      time.Time  `form:"end_date" time_format:"2006-01-02T15:04:05Z07:00"`
}
