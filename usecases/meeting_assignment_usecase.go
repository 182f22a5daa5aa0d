package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/security"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type MeetingAssignmentRepository interface {
	GetMeetingById(ctx context.Context, exec repositories.Executor, meetingId uuid.UUID) (models.Meeting, error)
	ListMeetings(ctx context.Context, exec repositories.Executor, filters models.MeetingFilters) ([]models.Meeting, error)
}

// MeetingAssignmentUseCase links cases to meetings. Assignment never
// changes the case status on its own, except for the unassignment
// fallback which resets an in-flight case to submitted.
type MeetingAssignmentUseCase struct {
	enforceSecurity   security.EnforceSecurityCase
	executorFactory   executor_factory.ExecutorFactory
	caseRepository    CaseUseCaseRepository
	meetingRepository MeetingAssignmentRepository
	clock             clock.Clock
}

func (usecase *MeetingAssignmentUseCase) GetMeeting(ctx context.Context, meetingId uuid.UUID) (models.Meeting, error) {
	if err := usecase.enforceSecurity.Permission(models.MEETING_READ); err != nil {
		return models.Meeting{}, err
	}
	return usecase.meetingRepository.GetMeetingById(ctx, usecase.executorFactory.NewExecutor(), meetingId)
}

// ListCandidateMeetings returns the meetings a case may be assigned to,
// soonest first.
func (usecase *MeetingAssignmentUseCase) ListCandidateMeetings(ctx context.Context) ([]models.Meeting, error) {
	if err := usecase.enforceSecurity.Permission(models.MEETING_READ); err != nil {
		return nil, err
	}
	return usecase.meetingRepository.ListMeetings(ctx, usecase.executorFactory.NewExecutor(), models.MeetingFilters{
		UpcomingOnly: true,
		Statuses:     []models.MeetingStatus{models.MeetingScheduled},
	})
}

// AssignMeeting sets the meeting on a case that has none. Use
// ReassignMeeting to move a case between meetings.
func (usecase *MeetingAssignmentUseCase) AssignMeeting(ctx context.Context, caseId, meetingId uuid.UUID) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.caseRepository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.AssignMeeting(c); err != nil {
				return models.Case{}, err
			}
			if c.Status == models.CaseArchived {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"archived cases cannot be assigned to a meeting")
			}
			if c.AssignedMeetingId != nil {
				return models.Case{}, errors.Wrap(models.ErrCaseMeetingAlreadyAssigned,
					fmt.Sprintf("case is already assigned to meeting %s", *c.AssignedMeetingId))
			}

			if err := usecase.checkMeetingAvailable(ctx, tx, meetingId); err != nil {
				return models.Case{}, err
			}

			err = usecase.caseRepository.ApplyCaseTransition(ctx, tx, models.CaseTransition{
				CaseId:          caseId,
				Status:          c.Status,
				AssignMeetingId: &meetingId,
			}, usecase.clock.Now())
			if err != nil {
				return models.Case{}, err
			}

			err = usecase.createMeetingEvent(ctx, tx, c, models.MeetingAssigned, &meetingId)
			if err != nil {
				return models.Case{}, err
			}
			return usecase.caseRepository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "meeting assigned",
		"case_id", caseId, "meeting_id", meetingId)
	return updatedCase, nil
}

// ReassignMeeting moves a submitted or pending case to another meeting.
// A nil meeting id unassigns instead.
func (usecase *MeetingAssignmentUseCase) ReassignMeeting(ctx context.Context, caseId uuid.UUID, meetingId *uuid.UUID) (models.Case, error) {
	if meetingId == nil {
		return usecase.UnassignMeeting(ctx, caseId)
	}

	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.caseRepository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.AssignMeeting(c); err != nil {
				return models.Case{}, err
			}
			if c.AssignedMeetingId == nil {
				return models.Case{}, errors.Wrap(models.ErrCaseNoMeetingAssigned,
					"case has no meeting to reassign from")
			}
			if c.Status != models.CaseSubmitted && c.Status != models.CasePending {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					fmt.Sprintf("cases in status %s cannot be reassigned", c.Status))
			}

			if err := usecase.checkMeetingAvailable(ctx, tx, *meetingId); err != nil {
				return models.Case{}, err
			}

			err = usecase.caseRepository.ApplyCaseTransition(ctx, tx, models.CaseTransition{
				CaseId:          caseId,
				Status:          c.Status,
				AssignMeetingId: meetingId,
			}, usecase.clock.Now())
			if err != nil {
				return models.Case{}, err
			}

			err = usecase.createMeetingEvent(ctx, tx, c, models.MeetingReassigned, meetingId)
			if err != nil {
				return models.Case{}, err
			}
			return usecase.caseRepository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "meeting reassigned",
		"case_id", caseId, "meeting_id", *meetingId)
	return updatedCase, nil
}

// UnassignMeeting detaches a case from its meeting and falls the case
// back to submitted. Archived cases are immutable, and reviewed cases
// keep their meeting for the audit trail; resubmitted cases are exempt
// from that lock.
func (usecase *MeetingAssignmentUseCase) UnassignMeeting(ctx context.Context, caseId uuid.UUID) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.caseRepository.GetCaseByIdForUpdate(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.UnassignMeeting(c); err != nil {
				return models.Case{}, err
			}
			if c.AssignedMeetingId == nil {
				return models.Case{}, errors.Wrap(models.ErrCaseNoMeetingAssigned,
					"case has no meeting to unassign")
			}
			if c.Status == models.CaseArchived {
				return models.Case{}, errors.Wrap(models.ErrCaseStatusTransitionNotAllowed,
					"archived cases cannot be edited")
			}
			if c.Status == models.CaseReviewed {
				return models.Case{}, errors.Wrap(models.ErrCaseReviewLocked,
					"the meeting of a reviewed case cannot be unassigned")
			}

			// A draft that was pre-assigned keeps its status, everything
			// else falls back to submitted.
			newStatus := models.CaseSubmitted
			if c.Status == models.CaseDraft {
				newStatus = c.Status
			}

			transition := models.CaseTransition{
				CaseId:       caseId,
				Status:       newStatus,
				ClearMeeting: true,
			}
			if err := transition.ValidateFrom(c.Status); err != nil {
				return models.Case{}, err
			}
			if err := usecase.caseRepository.ApplyCaseTransition(ctx, tx, transition, usecase.clock.Now()); err != nil {
				return models.Case{}, err
			}

			err = usecase.createMeetingEvent(ctx, tx, c, models.MeetingUnassigned, nil)
			if err != nil {
				return models.Case{}, err
			}
			return usecase.caseRepository.GetCaseById(ctx, tx, caseId)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "meeting unassigned", "case_id", caseId)
	return updatedCase, nil
}

func (usecase *MeetingAssignmentUseCase) checkMeetingAvailable(
	ctx context.Context,
	exec repositories.Executor,
	meetingId uuid.UUID,
) error {
	meeting, err := usecase.meetingRepository.GetMeetingById(ctx, exec, meetingId)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return errors.Wrap(models.ErrMeetingUnavailable, "meeting does not exist")
		}
		return err
	}
	if !meeting.AcceptsAssignments() {
		return errors.Wrap(models.ErrMeetingUnavailable, fmt.Sprintf("meeting is %s", meeting.Status))
	}
	return nil
}

func (usecase *MeetingAssignmentUseCase) createMeetingEvent(
	ctx context.Context,
	exec repositories.Executor,
	c models.Case,
	eventType models.CaseEventType,
	meetingId *uuid.UUID,
) error {
	attributes := models.CreateCaseEventAttributes{
		CaseId:    c.Id,
		UserId:    usecase.enforceSecurity.UserId(),
		EventType: eventType,
	}
	if c.AssignedMeetingId != nil {
		previousValue := c.AssignedMeetingId.String()
		attributes.PreviousValue = &previousValue
	}
	if meetingId != nil {
		newValue := meetingId.String()
		attributes.NewValue = &newValue
	}
	return usecase.caseRepository.CreateCaseEvent(ctx, exec, attributes)
}
