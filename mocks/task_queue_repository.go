package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type TaskQueueRepository struct {
	mock.Mock
}

func (r *TaskQueueRepository) EnqueueCaseReviewNotificationTx(ctx context.Context, tx repositories.Transaction,
	args models.CaseReviewNotificationArgs,
) error {
	called := r.Called(ctx, tx, args)
	return called.Error(0)
}

func (r *TaskQueueRepository) EnqueueStaleCaseSweep(ctx context.Context) error {
	called := r.Called(ctx)
	return called.Error(0)
}
