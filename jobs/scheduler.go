package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/NLight-n/ClarityMDT-sub000/usecases"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler enqueues the periodic jobs on the task queue. The queue
// deduplicates per period, so running two schedulers side by side does
// not double the work.
func RunScheduler(ctx context.Context, usecases usecases.Usecases) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
	}).WithContext(ctx)

	taskr.Task("*/15 * * * *", func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "stale_case_sweep")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := EnqueueStaleCaseSweep(ctx, usecases)
		return errToReturnCode(err), err
	})

	taskr.Run()
}
