package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/dbmodels"
)

func (repo MdtDbRepository) GetMeetingById(ctx context.Context, exec Executor, meetingId uuid.UUID) (models.Meeting, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectMeetingColumn...).
		From(dbmodels.TABLE_MEETINGS).
		Where(squirrel.Eq{"id": meetingId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptMeeting)
}

// ListMeetings ranks candidate meetings by ascending date. With
// UpcomingOnly, meetings dated strictly before today are excluded.
func (repo MdtDbRepository) ListMeetings(ctx context.Context, exec Executor, filters models.MeetingFilters) ([]models.Meeting, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectMeetingColumn...).
		From(dbmodels.TABLE_MEETINGS).
		OrderBy("date ASC")

	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.UpcomingOnly {
		query = query.Where(squirrel.Expr("date >= current_date"))
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptMeeting)
}
