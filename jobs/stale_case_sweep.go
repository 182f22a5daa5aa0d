package jobs

import (
	"context"

	"github.com/NLight-n/ClarityMDT-sub000/usecases"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

func EnqueueStaleCaseSweep(ctx context.Context, usecases usecases.Usecases) error {
	err := usecases.TaskQueueRepository.EnqueueStaleCaseSweep(ctx)
	if err != nil {
		return err
	}
	utils.LoggerFromContext(ctx).InfoContext(ctx, "stale case sweep enqueued")
	return nil
}
