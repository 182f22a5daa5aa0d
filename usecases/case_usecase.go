package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/security"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error)
	GetCaseByIdForUpdate(ctx context.Context, tx repositories.Transaction, caseId uuid.UUID) (models.Case, error)
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseAttributes, newCaseId uuid.UUID, createdBy models.UserId) error
	UpdateCase(ctx context.Context, exec repositories.Executor, attributes models.UpdateCaseAttributes) error
	ApplyCaseTransition(ctx context.Context, exec repositories.Executor,
		transition models.CaseTransition, now time.Time) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) ([]models.CaseEvent, error)
}

type caseMeetingReader interface {
	GetMeetingById(ctx context.Context, exec repositories.Executor, meetingId uuid.UUID) (models.Meeting, error)
}

type caseConsensusReportReader interface {
	GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
		caseId uuid.UUID) (*models.ConsensusReport, error)
}

// CaseUseCase owns the case lifecycle: every status change validates the
// current status under a row lock and applies the transition atomically.
type CaseUseCase struct {
	enforceSecurity   security.EnforceSecurityCase
	executorFactory   executor_factory.ExecutorFactory
	repository        CaseUseCaseRepository
	meetingRepository caseMeetingReader
	reportRepository  caseConsensusReportReader
	clock             clock.Clock
}

func (usecase *CaseUseCase) ListCases(ctx context.Context, filters models.CaseFilters) ([]models.Case, error) {
	if !filters.StartDate.IsZero() && !filters.EndDate.IsZero() && filters.StartDate.After(filters.EndDate) {
		return nil, fmt.Errorf("start date must be before end date: %w", models.BadParameterError)
	}

	exec := usecase.executorFactory.NewExecutor()
	cases, err := usecase.repository.ListCases(ctx, exec, filters)
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if err := usecase.enforceSecurity.ReadCase(c); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId uuid.UUID) (models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.getCaseWithDetails(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

func (usecase *CaseUseCase) CreateCase(ctx context.Context, attributes models.CreateCaseAttributes) (models.Case, error) {
	if err := usecase.enforceSecurity.CreateCase(attributes.PresentingDepartmentId); err != nil {
		return models.Case{}, err
	}
	if attributes.Name == "" {
		return models.Case{}, errors.Wrap(models.BadParameterError, "case name is required")
	}

	c, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			newCaseId := uuid.New()
			err := usecase.repository.CreateCase(ctx, tx, attributes, newCaseId, usecase.enforceSecurity.UserId())
			if err != nil {
				return models.Case{}, err
			}

			err = usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:    newCaseId,
				UserId:    usecase.enforceSecurity.UserId(),
				EventType: models.CaseCreated,
			})
			if err != nil {
				return models.Case{}, err
			}

			return usecase.repository.GetCaseById(ctx, tx, newCaseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case created", "case_id", c.Id)
	return c, nil
}

func (usecase *CaseUseCase) UpdateCase(ctx context.Context, attributes models.UpdateCaseAttributes) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseByIdForUpdate(ctx, tx, attributes.Id)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
				return models.Case{}, err
			}
			if c.Status == models.CaseArchived {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"archived cases cannot be edited")
			}

			if err := usecase.repository.UpdateCase(ctx, tx, attributes); err != nil {
				return models.Case{}, err
			}
			return usecase.repository.GetCaseById(ctx, tx, attributes.Id)
		})
}

// SubmitCase moves a draft case to submitted and links it to the target
// meeting. submitted_at is only stamped the first time a case is
// submitted.
func (usecase *CaseUseCase) SubmitCase(ctx context.Context, caseId, meetingId uuid.UUID) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.SubmitCase(c); err != nil {
				return models.Case{}, err
			}
			if c.Status != models.CaseDraft {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					fmt.Sprintf("only draft cases can be submitted, got %s", c.Status))
			}

			meeting, err := usecase.meetingRepository.GetMeetingById(ctx, tx, meetingId)
			if err != nil {
				if errors.Is(err, models.NotFoundError) {
					return models.Case{}, errors.Wrap(models.ErrMeetingUnavailable, "meeting does not exist")
				}
				return models.Case{}, err
			}
			if !meeting.AcceptsAssignments() {
				return models.Case{}, errors.Wrap(models.ErrMeetingUnavailable,
					fmt.Sprintf("meeting is %s", meeting.Status))
			}

			now := usecase.clock.Now()
			transition := models.CaseTransition{
				CaseId:          caseId,
				Status:          models.CaseSubmitted,
				AssignMeetingId: &meetingId,
			}
			if c.SubmittedAt == nil {
				transition.SubmittedAt = &now
			}
			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.Case{}, err
			}
			if err := usecase.repository.ApplyCaseTransition(ctx, tx, transition, now); err != nil {
				return models.Case{}, err
			}

			err = usecase.createStatusEvent(ctx, tx, c, models.CaseSubmitted, models.CaseSubmittedEvent)
			if err != nil {
				return models.Case{}, err
			}
			return usecase.repository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case submitted",
		"case_id", caseId, "meeting_id", meetingId)
	return updatedCase, nil
}

// ResubmitCase reopens a reviewed case for another round of review. The
// existing consensus report is preserved: a later consensus update is
// the path back to reviewed.
func (usecase *CaseUseCase) ResubmitCase(ctx context.Context, caseId uuid.UUID, meetingId *uuid.UUID) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.ResubmitCase(c); err != nil {
				return models.Case{}, err
			}
			if c.Status != models.CaseReviewed {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					fmt.Sprintf("only reviewed cases can be resubmitted, got %s", c.Status))
			}

			transition := models.CaseTransition{
				CaseId: caseId,
				Status: models.CaseResubmitted,
			}
			if meetingId != nil {
				meeting, err := usecase.meetingRepository.GetMeetingById(ctx, tx, *meetingId)
				if err != nil {
					if errors.Is(err, models.NotFoundError) {
						return models.Case{}, errors.Wrap(models.ErrMeetingUnavailable, "meeting does not exist")
					}
					return models.Case{}, err
				}
				if !meeting.AcceptsAssignments() {
					return models.Case{}, errors.Wrap(models.ErrMeetingUnavailable,
						fmt.Sprintf("meeting is %s", meeting.Status))
				}
				transition.AssignMeetingId = meetingId
			}

			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.Case{}, err
			}
			if err := usecase.repository.ApplyCaseTransition(ctx, tx, transition, usecase.clock.Now()); err != nil {
				return models.Case{}, err
			}

			err = usecase.createStatusEvent(ctx, tx, c, models.CaseResubmitted, models.CaseResubmittedEvent)
			if err != nil {
				return models.Case{}, err
			}
			if meetingId != nil {
				newValue := meetingId.String()
				err = usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
					CaseId:    caseId,
					UserId:    usecase.enforceSecurity.UserId(),
					EventType: models.MeetingReassigned,
					NewValue:  &newValue,
				})
				if err != nil {
					return models.Case{}, err
				}
			}
			return usecase.repository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case resubmitted", "case_id", caseId)
	return updatedCase, nil
}

func (usecase *CaseUseCase) ArchiveCase(ctx context.Context, caseId uuid.UUID) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.ArchiveCase(c); err != nil {
				return models.Case{}, err
			}
			if c.Status == models.CaseArchived {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"case is already archived")
			}

			now := usecase.clock.Now()
			transition := models.CaseTransition{
				CaseId:     caseId,
				Status:     models.CaseArchived,
				ArchivedAt: &now,
			}
			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.Case{}, err
			}
			if err := usecase.repository.ApplyCaseTransition(ctx, tx, transition, now); err != nil {
				return models.Case{}, err
			}

			err = usecase.createStatusEvent(ctx, tx, c, models.CaseArchived, models.CaseArchivedEvent)
			if err != nil {
				return models.Case{}, err
			}
			return usecase.repository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case archived", "case_id", caseId)
	return updatedCase, nil
}

func (usecase *CaseUseCase) ListCaseEvents(ctx context.Context, caseId uuid.UUID) ([]models.CaseEvent, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceSecurity.ReadCaseEvents(c); err != nil {
		return nil, err
	}
	return usecase.repository.ListCaseEvents(ctx, exec, caseId)
}

func (usecase *CaseUseCase) getCaseWithDetails(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error) {
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	// the audit trail is only embedded for actors allowed to read it
	if err := usecase.enforceSecurity.ReadCaseEvents(c); err == nil {
		events, err := usecase.repository.ListCaseEvents(ctx, exec, caseId)
		if err != nil {
			return models.Case{}, err
		}
		c.Events = events
	}

	report, err := usecase.reportRepository.GetConsensusReportByCaseId(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	c.ConsensusReport = report

	return c, nil
}

func (usecase *CaseUseCase) createStatusEvent(
	ctx context.Context,
	exec repositories.Executor,
	c models.Case,
	newStatus models.CaseStatus,
	eventType models.CaseEventType,
) error {
	newValue := string(newStatus)
	previousValue := string(c.Status)
	return usecase.repository.CreateCaseEvent(ctx, exec, models.CreateCaseEventAttributes{
		CaseId:        c.Id,
		UserId:        usecase.enforceSecurity.UserId(),
		EventType:     eventType,
		NewValue:      &newValue,
		PreviousValue: &previousValue,
	})
}
