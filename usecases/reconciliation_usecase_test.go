package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/NLight-n/ClarityMDT-sub000/mocks"
)

func TestSweepStaleSubmittedCases(t *testing.T) {
	ctx := context.Background()
	repository := new(mocks.CaseRepository)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)

	executorFactory.On("NewExecutor").Return(executor)
	repository.On("DemoteStaleSubmittedCases", ctx, executor).Return(int64(3), nil)

	demoted, err := NewReconciliationUseCase(executorFactory, repository).SweepStaleSubmittedCases(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), demoted)
	repository.AssertExpectations(t)
	executorFactory.AssertExpectations(t)
}

func TestSweepStaleSubmittedCases_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repository := new(mocks.CaseRepository)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)

	executorFactory.On("NewExecutor").Return(executor)
	repository.On("DemoteStaleSubmittedCases", ctx, executor).
		Return(int64(0), errors.New("connection reset"))

	_, err := NewReconciliationUseCase(executorFactory, repository).SweepStaleSubmittedCases(ctx)

	assert.Error(t, err)
	repository.AssertExpectations(t)
	executorFactory.AssertExpectations(t)
}
