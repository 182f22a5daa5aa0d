package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/dbmodels"
)

func (repo MdtDbRepository) GetConsensusReportByCaseId(
	ctx context.Context,
	exec Executor,
	caseId uuid.UUID,
) (*models.ConsensusReport, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectConsensusReportColumn...).
		From(dbmodels.TABLE_CONSENSUS_REPORTS).
		Where(squirrel.Eq{"case_id": caseId})

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptConsensusReport)
}

// CreateConsensusReport relies on the unique index on case_id as the
// authoritative one-report-per-case guard: of two concurrent creates,
// the loser surfaces ErrConsensusReportAlreadyExists.
func (repo MdtDbRepository) CreateConsensusReport(
	ctx context.Context,
	exec Executor,
	attributes models.CreateConsensusReportAttributes,
	newReportId uuid.UUID,
	createdBy models.UserId,
) error {
	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CONSENSUS_REPORTS).
			Columns(
				"id",
				"case_id",
				"final_diagnosis",
				"mdt_consensus",
				"meeting_date",
				"remarks",
				"created_by_id",
			).
			Values(
				newReportId,
				attributes.CaseId,
				attributes.FinalDiagnosis,
				attributes.MdtConsensus,
				attributes.MeetingDate,
				attributes.Remarks,
				createdBy,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.WithDetail(models.ErrConsensusReportAlreadyExists,
			"case "+attributes.CaseId.String())
	}
	return err
}

func (repo MdtDbRepository) UpdateConsensusReport(
	ctx context.Context,
	exec Executor,
	attributes models.UpdateConsensusReportAttributes,
	now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CONSENSUS_REPORTS).
		Set("updated_at", now).
		Where(squirrel.Eq{"case_id": attributes.CaseId})

	if attributes.FinalDiagnosis != nil {
		query = query.Set("final_diagnosis", *attributes.FinalDiagnosis)
	}
	if attributes.MdtConsensus != nil {
		query = query.Set("mdt_consensus", *attributes.MdtConsensus)
	}
	if attributes.MeetingDate != nil {
		query = query.Set("meeting_date", *attributes.MeetingDate)
	}
	if attributes.Remarks != nil {
		query = query.Set("remarks", *attributes.Remarks)
	}

	affected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrap(models.NotFoundError, "no consensus report exists for this case")
	}
	return nil
}
