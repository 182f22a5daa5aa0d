package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/security"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type ConsensusReportRepository interface {
	GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
		caseId uuid.UUID) (*models.ConsensusReport, error)
	CreateConsensusReport(ctx context.Context, exec repositories.Executor,
		attributes models.CreateConsensusReportAttributes, newReportId uuid.UUID, createdBy models.UserId) error
	UpdateConsensusReport(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateConsensusReportAttributes, now time.Time) error
}

type consensusUserRepository interface {
	ListConsultantsOfDepartment(ctx context.Context, exec repositories.Executor,
		departmentId uuid.UUID) ([]models.User, error)
}

type caseReviewNotificationEnqueuer interface {
	EnqueueCaseReviewNotificationTx(ctx context.Context, tx repositories.Transaction,
		args models.CaseReviewNotificationArgs) error
}

// ConsensusReportUseCase records and corrects MDT decisions. Recording a
// report is what moves a case to reviewed, and both happen in the same
// transaction as the notification enqueue.
type ConsensusReportUseCase struct {
	enforceSecurity security.EnforceSecurityConsensusReport
	executorFactory executor_factory.ExecutorFactory
	caseRepository  CaseUseCaseRepository
	repository      ConsensusReportRepository
	userRepository  consensusUserRepository
	taskQueue       caseReviewNotificationEnqueuer
	clock           clock.Clock
}

func (usecase *ConsensusReportUseCase) GetConsensusReport(ctx context.Context, caseId uuid.UUID) (models.ConsensusReport, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.caseRepository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.ConsensusReport{}, err
	}
	if err := usecase.enforceSecurity.ReadConsensusReport(c); err != nil {
		return models.ConsensusReport{}, err
	}

	report, err := usecase.repository.GetConsensusReportByCaseId(ctx, exec, caseId)
	if err != nil {
		return models.ConsensusReport{}, err
	}
	if report == nil {
		return models.ConsensusReport{}, errors.Wrap(models.NotFoundError,
			"no consensus report exists for this case")
	}
	return *report, nil
}

// CreateConsensusReport records the MDT decision and promotes the case
// to reviewed, whatever its prior non-archived status. The review
// notification job is inserted in the same transaction, so a rollback
// also drops the notification.
func (usecase *ConsensusReportUseCase) CreateConsensusReport(
	ctx context.Context,
	attributes models.CreateConsensusReportAttributes,
) (models.ConsensusReport, error) {
	if err := validateConsensusContent(attributes.FinalDiagnosis, attributes.MdtConsensus); err != nil {
		return models.ConsensusReport{}, err
	}

	report, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.ConsensusReport, error) {
			c, err := usecase.caseRepository.GetCaseByIdForUpdate(ctx, tx, attributes.CaseId)
			if err != nil {
				return models.ConsensusReport{}, err
			}
			if err := usecase.enforceSecurity.CreateConsensusReport(c); err != nil {
				return models.ConsensusReport{}, err
			}
			if c.Status == models.CaseArchived {
				return models.ConsensusReport{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"archived cases cannot receive a consensus report")
			}

			newReportId := uuid.New()
			err = usecase.repository.CreateConsensusReport(ctx, tx, attributes, newReportId,
				usecase.enforceSecurity.UserId())
			if err != nil {
				return models.ConsensusReport{}, err
			}

			now := usecase.clock.Now()
			transition := models.CaseTransition{
				CaseId:     attributes.CaseId,
				Status:     models.CaseReviewed,
				ReviewedAt: &now,
			}
			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.ConsensusReport{}, err
			}
			if err := usecase.caseRepository.ApplyCaseTransition(ctx, tx, transition, now); err != nil {
				return models.ConsensusReport{}, err
			}

			newValue := string(models.CaseReviewed)
			previousValue := string(c.Status)
			err = usecase.caseRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        attributes.CaseId,
				UserId:        usecase.enforceSecurity.UserId(),
				EventType:     models.ConsensusRecorded,
				NewValue:      &newValue,
				PreviousValue: &previousValue,
			})
			if err != nil {
				return models.ConsensusReport{}, err
			}

			recipients, err := usecase.reviewRecipients(ctx, tx, c)
			if err != nil {
				return models.ConsensusReport{}, err
			}
			err = usecase.taskQueue.EnqueueCaseReviewNotificationTx(ctx, tx, models.CaseReviewNotificationArgs{
				CaseId:       attributes.CaseId,
				ReportId:     newReportId,
				RecipientIds: recipients,
			})
			if err != nil {
				return models.ConsensusReport{}, err
			}

			created, err := usecase.repository.GetConsensusReportByCaseId(ctx, tx, attributes.CaseId)
			if err != nil {
				return models.ConsensusReport{}, err
			}
			if created == nil {
				return models.ConsensusReport{}, errors.New("consensus report vanished after insert")
			}
			return *created, nil
		})
	if err != nil {
		return models.ConsensusReport{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "consensus report recorded",
		"case_id", attributes.CaseId, "report_id", report.Id)
	return report, nil
}

// UpdateConsensusReport corrects an existing report. It re-stamps
// reviewed_at and re-asserts the reviewed status, which is the path by
// which a resubmitted case returns to reviewed.
func (usecase *ConsensusReportUseCase) UpdateConsensusReport(
	ctx context.Context,
	attributes models.UpdateConsensusReportAttributes,
) (models.ConsensusReport, error) {
	if attributes.FinalDiagnosis != nil || attributes.MdtConsensus != nil {
		finalDiagnosis := "unchanged"
		mdtConsensus := "unchanged"
		if attributes.FinalDiagnosis != nil {
			finalDiagnosis = *attributes.FinalDiagnosis
		}
		if attributes.MdtConsensus != nil {
			mdtConsensus = *attributes.MdtConsensus
		}
		if err := validateConsensusContent(finalDiagnosis, mdtConsensus); err != nil {
			return models.ConsensusReport{}, err
		}
	}

	report, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.ConsensusReport, error) {
			c, err := usecase.caseRepository.GetCaseByIdForUpdate(ctx, tx, attributes.CaseId)
			if err != nil {
				return models.ConsensusReport{}, err
			}
			if err := usecase.enforceSecurity.UpdateConsensusReport(c); err != nil {
				return models.ConsensusReport{}, err
			}
			if c.Status == models.CaseArchived {
				return models.ConsensusReport{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"archived cases cannot be edited")
			}

			now := usecase.clock.Now()
			if err := usecase.repository.UpdateConsensusReport(ctx, tx, attributes, now); err != nil {
				return models.ConsensusReport{}, err
			}

			transition := models.CaseTransition{
				CaseId:     attributes.CaseId,
				Status:     models.CaseReviewed,
				ReviewedAt: &now,
			}
			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.ConsensusReport{}, err
			}
			if err := usecase.caseRepository.ApplyCaseTransition(ctx, tx, transition, now); err != nil {
				return models.ConsensusReport{}, err
			}

			previousValue := string(c.Status)
			newValue := string(models.CaseReviewed)
			err = usecase.caseRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        attributes.CaseId,
				UserId:        usecase.enforceSecurity.UserId(),
				EventType:     models.ConsensusUpdated,
				NewValue:      &newValue,
				PreviousValue: &previousValue,
			})
			if err != nil {
				return models.ConsensusReport{}, err
			}

			updated, err := usecase.repository.GetConsensusReportByCaseId(ctx, tx, attributes.CaseId)
			if err != nil {
				return models.ConsensusReport{}, err
			}
			if updated == nil {
				return models.ConsensusReport{}, errors.Wrap(models.NotFoundError,
					"no consensus report exists for this case")
			}
			return *updated, nil
		})
	if err != nil {
		return models.ConsensusReport{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "consensus report updated",
		"case_id", attributes.CaseId, "report_id", report.Id)
	return report, nil
}

// reviewRecipients is the case creator plus every consultant of the
// presenting department, deduplicated.
func (usecase *ConsensusReportUseCase) reviewRecipients(
	ctx context.Context,
	exec repositories.Executor,
	c models.Case,
) ([]models.UserId, error) {
	consultants, err := usecase.userRepository.ListConsultantsOfDepartment(ctx, exec, c.PresentingDepartmentId)
	if err != nil {
		return nil, err
	}

	recipients := set.New[models.UserId](len(consultants) + 1)
	recipients.Insert(c.CreatedById)
	for _, consultant := range consultants {
		recipients.Insert(consultant.UserId)
	}
	return recipients.Slice(), nil
}

func validateConsensusContent(finalDiagnosis, mdtConsensus string) error {
	if finalDiagnosis == "" {
		return errors.Wrap(models.BadParameterError, "final diagnosis is required")
	}
	if mdtConsensus == "" {
		return errors.Wrap(models.BadParameterError, "mdt consensus is required")
	}
	return nil
}
