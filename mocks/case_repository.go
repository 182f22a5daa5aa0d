package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) GetCaseByIdForUpdate(ctx context.Context, tx repositories.Transaction, caseId uuid.UUID) (models.Case, error) {
	args := r.Called(ctx, tx, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes, newCaseId uuid.UUID, createdBy models.UserId,
) error {
	args := r.Called(ctx, exec, attributes, newCaseId, createdBy)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCase(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateCaseAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) ApplyCaseTransition(ctx context.Context, exec repositories.Executor,
	transition models.CaseTransition, now time.Time,
) error {
	args := r.Called(ctx, exec, transition, now)
	return args.Error(0)
}

func (r *CaseRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}

func (r *CaseRepository) DemoteStaleSubmittedCases(ctx context.Context, exec repositories.Executor) (int64, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).(int64), args.Error(1)
}
