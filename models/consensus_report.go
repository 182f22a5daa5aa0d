package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsensusReport is the recorded MDT decision for a case. At most one
// exists per case, enforced by a unique index on case_id.
type ConsensusReport struct {
	Id             uuid.UUID
	CaseId         uuid.UUID
	FinalDiagnosis string
	MdtConsensus   string
	MeetingDate    time.Time
	Remarks        *string
	CreatedById    UserId
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateConsensusReportAttributes struct {
	CaseId         uuid.UUID
	FinalDiagnosis string
	MdtConsensus   string
	MeetingDate    time.Time
	Remarks        *string
}

// UpdateConsensusReportAttributes carries a partial update: nil fields
// are left unchanged.
type UpdateConsensusReportAttributes struct {
	CaseId         uuid.UUID
	FinalDiagnosis *string
	MdtConsensus   *string
	MeetingDate    *time.Time
	Remarks        *string
}
