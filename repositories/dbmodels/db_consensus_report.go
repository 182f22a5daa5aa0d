package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type DBConsensusReport struct {
	Id             uuid.UUID `db:"id"`
	CaseId         uuid.UUID `db:"case_id"`
	FinalDiagnosis string    `db:"final_diagnosis"`
	MdtConsensus   string    `db:"mdt_consensus"`
	MeetingDate    time.Time `db:"meeting_date"`
	Remarks        *string   `db:"remarks"`
	CreatedById    uuid.UUID `db:"created_by_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const TABLE_CONSENSUS_REPORTS = "consensus_reports"

var SelectConsensusReportColumn = utils.ColumnList[DBConsensusReport]()

func AdaptConsensusReport(db DBConsensusReport) (models.ConsensusReport, error) {
	return models.ConsensusReport{
		Id:             db.Id,
		CaseId:         db.CaseId,
		FinalDiagnosis: db.FinalDiagnosis,
		MdtConsensus:   db.MdtConsensus,
		MeetingDate:    db.MeetingDate,
		Remarks:        db.Remarks,
		CreatedById:    db.CreatedById,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}
