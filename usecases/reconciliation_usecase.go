package usecases

import (
	"context"

	"github.com/NLight-n/ClarityMDT-sub000/infra"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type staleCaseRepository interface {
	DemoteStaleSubmittedCases(ctx context.Context, exec repositories.Executor) (int64, error)
}

// ReconciliationUseCase runs the scheduled stale case sweep: submitted
// cases whose meeting date has passed without a consensus report fall
// back to pending. The sweep is a single statement that re-checks its
// predicate at write time, so running it concurrently with user actions
// or running it twice is safe.
type ReconciliationUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      staleCaseRepository
}

func NewReconciliationUseCase(
	executorFactory executor_factory.ExecutorFactory,
	repository staleCaseRepository,
) ReconciliationUseCase {
	return ReconciliationUseCase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (usecase ReconciliationUseCase) SweepStaleSubmittedCases(ctx context.Context) (int64, error) {
	demoted, err := usecase.repository.DemoteStaleSubmittedCases(ctx, usecase.executorFactory.NewExecutor())
	if err != nil {
		infra.SweepRuns.WithLabelValues("error").Inc()
		return 0, err
	}

	infra.SweepRuns.WithLabelValues("ok").Inc()
	infra.StaleCasesDemoted.Add(float64(demoted))
	utils.LoggerFromContext(ctx).InfoContext(ctx, "stale case sweep done",
		"demoted", demoted, "target_status", models.CasePending)
	return demoted, nil
}
