package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type ConsensusReportDto struct {
	Id             uuid.UUID   `json:"id"`
	CaseId         uuid.UUID   `json:"case_id"`
	FinalDiagnosis string      `json:"final_diagnosis"`
	MdtConsensus   string      `json:"mdt_consensus"`
	MeetingDate    time.Time   `json:"meeting_date"`
	Remarks        null.String `json:"remarks"`
	CreatedById    uuid.UUID   `json:"created_by_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func AdaptConsensusReportDto(report models.ConsensusReport) ConsensusReportDto {
	return ConsensusReportDto{
		Id:             report.Id,
		CaseId:         report.CaseId,
		FinalDiagnosis: report.FinalDiagnosis,
		MdtConsensus:   report.MdtConsensus,
		MeetingDate:    report.MeetingDate,
		Remarks:        null.StringFromPtr(report.Remarks),
		CreatedById:    report.CreatedById,
		CreatedAt:      report.CreatedAt,
		UpdatedAt:      report.UpdatedAt,
	}
}

type CreateConsensusReportBody struct {
	FinalDiagnosis string      `json:"final_diagnosis" binding:"required"`
	MdtConsensus   string      `json:"mdt_consensus" binding:"required"`
	MeetingDate    time.Time   `json:"meeting_date" binding:"required"`
	Remarks        null.String `json:"remarks"`
}

type UpdateConsensusReportBody struct {
	FinalDiagnosis *string     `json:"final_diagnosis"`
	MdtConsensus   *string     `json:"mdt_consensus"`
	MeetingDate    *time.Time  `json:"meeting_date"`
	Remarks        null.String `json:"remarks"`
}
