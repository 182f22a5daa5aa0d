package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/dbmodels"
)

func (repo MdtDbRepository) CreateCaseEvent(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_EVENTS).
			Columns(
				"id",
				"case_id",
				"user_id",
				"event_type",
				"new_value",
				"previous_value",
			).
			Values(
				uuid.New(),
				attributes.CaseId,
				attributes.UserId,
				string(attributes.EventType),
				attributes.NewValue,
				attributes.PreviousValue,
			),
	)
	return err
}

func (repo MdtDbRepository) ListCaseEvents(ctx context.Context, exec Executor, caseId uuid.UUID) ([]models.CaseEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseEventColumn...).
		From(dbmodels.TABLE_CASE_EVENTS).
		Where(squirrel.Eq{"case_id": caseId}).
		OrderBy("created_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseEvent)
}
