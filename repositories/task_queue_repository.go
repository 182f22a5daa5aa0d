package repositories

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

// TaskQueueRepository enqueues background work on the river queue. The
// engine never blocks on notification delivery: it only inserts a job,
// inside the same transaction as the state change when one is open.
type TaskQueueRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) TaskQueueRepository {
	return TaskQueueRepository{client: client}
}

func (repo TaskQueueRepository) EnqueueCaseReviewNotificationTx(
	ctx context.Context,
	tx Transaction,
	args models.CaseReviewNotificationArgs,
) error {
	_, err := repo.client.InsertTx(ctx, tx.RawTx(), args, nil)
	return errors.Wrap(err, "could not enqueue case review notification")
}

func (repo TaskQueueRepository) EnqueueStaleCaseSweep(ctx context.Context) error {
	_, err := repo.client.Insert(ctx, models.StaleCaseSweepArgs{}, &river.InsertOpts{
		UniqueOpts: river.UniqueOpts{ByPeriod: time.Minute},
	})
	return errors.Wrap(err, "could not enqueue stale case sweep")
}
