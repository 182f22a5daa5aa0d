package worker_jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

const CASE_REVIEW_NOTIFICATION_TIMEOUT = 2 * time.Minute

type caseReviewNotificationRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error)
	GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
		caseId uuid.UUID) (*models.ConsensusReport, error)
}

// NotificationDispatcher delivers the review notification to the outside
// world. The worker does not care whether that is a webhook, an email
// gateway or a log line.
type NotificationDispatcher interface {
	SendCaseReviewed(ctx context.Context, notification models.CaseReviewedNotification) error
}

// CaseReviewNotificationWorker delivers the single review notification
// enqueued when a consensus report is recorded. Jobs are at-least-once:
// a case whose report has since disappeared is skipped, not retried.
type CaseReviewNotificationWorker struct {
	river.WorkerDefaults[models.CaseReviewNotificationArgs]

	executorFactory executor_factory.ExecutorFactory
	repository      caseReviewNotificationRepository
	dispatcher      NotificationDispatcher
}

func NewCaseReviewNotificationWorker(
	executorFactory executor_factory.ExecutorFactory,
	repository caseReviewNotificationRepository,
	dispatcher NotificationDispatcher,
) *CaseReviewNotificationWorker {
	return &CaseReviewNotificationWorker{
		executorFactory: executorFactory,
		repository:      repository,
		dispatcher:      dispatcher,
	}
}

func (w *CaseReviewNotificationWorker) Timeout(job *river.Job[models.CaseReviewNotificationArgs]) time.Duration {
	return CASE_REVIEW_NOTIFICATION_TIMEOUT
}

func (w *CaseReviewNotificationWorker) Work(ctx context.Context, job *river.Job[models.CaseReviewNotificationArgs]) error {
	logger := utils.LoggerFromContext(ctx).With(
		"case_id", job.Args.CaseId,
		"report_id", job.Args.ReportId,
	)
	ctx = utils.StoreLoggerInContext(ctx, logger)

	exec := w.executorFactory.NewExecutor()

	c, err := w.repository.GetCaseById(ctx, exec, job.Args.CaseId)
	if err != nil {
		return err
	}

	report, err := w.repository.GetConsensusReportByCaseId(ctx, exec, job.Args.CaseId)
	if err != nil {
		return err
	}
	if report == nil {
		logger.WarnContext(ctx, "case no longer has a consensus report, skipping notification")
		return nil
	}

	reviewedAt := report.UpdatedAt
	if c.ReviewedAt != nil {
		reviewedAt = *c.ReviewedAt
	}

	err = w.dispatcher.SendCaseReviewed(ctx, models.CaseReviewedNotification{
		CaseId:         c.Id,
		CaseName:       c.Name,
		ReportId:       report.Id,
		FinalDiagnosis: report.FinalDiagnosis,
		ReviewedAt:     reviewedAt,
		RecipientIds:   job.Args.RecipientIds,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to dispatch case review notification", "error", err)
		return err
	}

	logger.InfoContext(ctx, "case review notification dispatched",
		"recipients", len(job.Args.RecipientIds))
	return nil
}
