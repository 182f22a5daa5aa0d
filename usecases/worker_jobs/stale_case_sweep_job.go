package worker_jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

const STALE_CASE_SWEEP_TIMEOUT = 5 * time.Minute

type staleCaseSweeper interface {
	SweepStaleSubmittedCases(ctx context.Context) (int64, error)
}

// StaleCaseSweepWorker executes the reconciliation sweep enqueued by the
// scheduler. The sweep itself is idempotent, so duplicate jobs are
// harmless.
type StaleCaseSweepWorker struct {
	river.WorkerDefaults[models.StaleCaseSweepArgs]

	reconciliation staleCaseSweeper
}

func NewStaleCaseSweepWorker(reconciliation staleCaseSweeper) *StaleCaseSweepWorker {
	return &StaleCaseSweepWorker{reconciliation: reconciliation}
}

func (w *StaleCaseSweepWorker) Timeout(job *river.Job[models.StaleCaseSweepArgs]) time.Duration {
	return STALE_CASE_SWEEP_TIMEOUT
}

func (w *StaleCaseSweepWorker) Work(ctx context.Context, job *river.Job[models.StaleCaseSweepArgs]) error {
	_, err := w.reconciliation.SweepStaleSubmittedCases(ctx)
	return err
}
