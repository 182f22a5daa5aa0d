package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/dbmodels"
)

func (repo MdtDbRepository) GetUserById(ctx context.Context, exec Executor, userId models.UserId) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": userId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo MdtDbRepository) ListConsultantsOfDepartment(
	ctx context.Context,
	exec Executor,
	departmentId uuid.UUID,
) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{
			"role":          models.CONSULTANT.String(),
			"department_id": departmentId,
		}).
		OrderBy("email ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}
