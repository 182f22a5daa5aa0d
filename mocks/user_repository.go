package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) GetUserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) ListConsultantsOfDepartment(ctx context.Context, exec repositories.Executor,
	departmentId uuid.UUID,
) ([]models.User, error) {
	args := r.Called(ctx, exec, departmentId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
