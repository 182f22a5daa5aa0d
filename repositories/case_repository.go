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

func (repo MdtDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId uuid.UUID) (models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": caseId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCase)
}

// GetCaseByIdForUpdate locks the case row for the remainder of the
// enclosing transaction. Every status transition reads through this so
// that concurrent transitions serialize on the row.
func (repo MdtDbRepository) GetCaseByIdForUpdate(ctx context.Context, tx Transaction, caseId uuid.UUID) (models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": caseId}).
		Suffix("FOR UPDATE")

	return SqlToModel(ctx, tx, query, dbmodels.AdaptCase)
}

func (repo MdtDbRepository) ListCases(ctx context.Context, exec Executor, filters models.CaseFilters) ([]models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		OrderBy("created_at DESC")

	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.DepartmentId != nil {
		query = query.Where(squirrel.Eq{"presenting_department_id": *filters.DepartmentId})
	}
	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": filters.StartDate})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.LtOrEq{"created_at": filters.EndDate})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo MdtDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseAttributes,
	newCaseId uuid.UUID,
	createdBy models.UserId,
) error {
	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"name",
				"patient_reference",
				"presenting_department_id",
				"created_by_id",
				"status",
			).
			Values(
				newCaseId,
				attributes.Name,
				attributes.PatientReference,
				attributes.PresentingDepartmentId,
				createdBy,
				string(models.CaseDraft),
			),
	)
	return err
}

func (repo MdtDbRepository) UpdateCase(ctx context.Context, exec Executor, attributes models.UpdateCaseAttributes) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": attributes.Id})

	if attributes.Name != "" {
		query = query.Set("name", attributes.Name)
	}
	if attributes.PatientReference != "" {
		query = query.Set("patient_reference", attributes.PatientReference)
	}

	affected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrap(models.NotFoundError, "case to update does not exist")
	}
	return nil
}

// ApplyCaseTransition writes the new status and every column that moves
// with it in a single statement, so a transition is either fully applied
// or not at all.
func (repo MdtDbRepository) ApplyCaseTransition(
	ctx context.Context,
	exec Executor,
	transition models.CaseTransition,
	now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("status", string(transition.Status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": transition.CaseId})

	if transition.AssignMeetingId != nil {
		query = query.Set("assigned_meeting_id", *transition.AssignMeetingId)
	} else if transition.ClearMeeting {
		query = query.Set("assigned_meeting_id", nil)
	}
	if transition.SubmittedAt != nil {
		query = query.Set("submitted_at", *transition.SubmittedAt)
	}
	if transition.ReviewedAt != nil {
		query = query.Set("reviewed_at", *transition.ReviewedAt)
	}
	if transition.ArchivedAt != nil {
		query = query.Set("archived_at", *transition.ArchivedAt)
	}

	affected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrap(models.NotFoundError, "case to transition does not exist")
	}
	return nil
}

// demoteStaleSubmittedCasesSql re-checks the full selection predicate at
// write time: a case that gained a consensus report or changed status
// between scheduling and execution of the sweep is left untouched.
const demoteStaleSubmittedCasesSql = `
UPDATE cases c
SET status = $1, updated_at = now()
FROM meetings m
WHERE c.assigned_meeting_id = m.id
  AND c.status = $2
  AND m.date < current_date
  AND NOT EXISTS (
    SELECT 1 FROM consensus_reports r WHERE r.case_id = c.id
  )
`

func (repo MdtDbRepository) DemoteStaleSubmittedCases(ctx context.Context, exec Executor) (int64, error) {
	tag, err := exec.Exec(ctx, demoteStaleSubmittedCasesSql,
		string(models.CasePending), string(models.CaseSubmitted))
	if err != nil {
		return 0, errors.Wrap(err, "error demoting stale submitted cases")
	}
	return tag.RowsAffected(), nil
}
