package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/NLight-n/ClarityMDT-sub000/mocks"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
)

type MeetingAssignmentTestSuite struct {
	suite.Suite
	caseRepository    *mocks.CaseRepository
	meetingRepository *mocks.MeetingRepository
	executorFactory   *mocks.ExecutorFactory
	executor          *mocks.Executor
	transaction       *mocks.Transaction
	enforceSecurity   *mocks.EnforceSecurity

	now          time.Time
	userId       models.UserId
	caseId       uuid.UUID
	meetingId    uuid.UUID
	newMeetingId uuid.UUID
}

func (suite *MeetingAssignmentTestSuite) SetupTest() {
	suite.caseRepository = new(mocks.CaseRepository)
	suite.meetingRepository = new(mocks.MeetingRepository)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.executorFactory = &mocks.ExecutorFactory{TxMock: suite.transaction}
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.now = time.Date(2027, 3, 12, 10, 0, 0, 0, time.UTC)
	suite.userId = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	suite.caseId = uuid.MustParse("00000000-0000-0000-0000-000000000011")
	suite.meetingId = uuid.MustParse("00000000-0000-0000-0000-000000000021")
	suite.newMeetingId = uuid.MustParse("00000000-0000-0000-0000-000000000022")
}

func (suite *MeetingAssignmentTestSuite) makeUsecase() *MeetingAssignmentUseCase {
	return &MeetingAssignmentUseCase{
		enforceSecurity:   suite.enforceSecurity,
		executorFactory:   suite.executorFactory,
		caseRepository:    suite.caseRepository,
		meetingRepository: suite.meetingRepository,
		clock:             clock.NewMock(suite.now),
	}
}

func (suite *MeetingAssignmentTestSuite) AssertExpectations() {
	t := suite.T()
	suite.caseRepository.AssertExpectations(t)
	suite.meetingRepository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *MeetingAssignmentTestSuite) Test_AssignMeeting_KeepsCaseStatus() {
	ctx := context.Background()

	submittedCase := models.Case{Id: suite.caseId, Status: models.CaseSubmitted}
	assignedCase := submittedCase
	assignedCase.AssignedMeetingId = &suite.meetingId

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(submittedCase, nil)
	suite.enforceSecurity.On("AssignMeeting", submittedCase).Return(nil)
	suite.meetingRepository.On("GetMeetingById", ctx, suite.transaction, suite.meetingId).
		Return(models.Meeting{Id: suite.meetingId, Status: models.MeetingScheduled}, nil)
	suite.caseRepository.On("ApplyCaseTransition", ctx, suite.transaction, models.CaseTransition{
		CaseId:          suite.caseId,
		Status:          models.CaseSubmitted,
		AssignMeetingId: &suite.meetingId,
	}, suite.now).Return(nil)
	suite.enforceSecurity.On("UserId").Return(suite.userId)
	newValue := suite.meetingId.String()
	suite.caseRepository.On("CreateCaseEvent", ctx, suite.transaction, models.CreateCaseEventAttributes{
		CaseId:    suite.caseId,
		UserId:    suite.userId,
		EventType: models.MeetingAssigned,
		NewValue:  &newValue,
	}).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, suite.caseId).
		Return(assignedCase, nil)

	c, err := suite.makeUsecase().AssignMeeting(ctx, suite.caseId, suite.meetingId)

	suite.NoError(err)
	suite.Equal(models.CaseSubmitted, c.Status)
	suite.Equal(&suite.meetingId, c.AssignedMeetingId)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_AssignMeeting_RejectsAlreadyAssignedCase() {
	ctx := context.Background()

	assignedCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseSubmitted,
		AssignedMeetingId: &suite.meetingId,
	}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(assignedCase, nil)
	suite.enforceSecurity.On("AssignMeeting", assignedCase).Return(nil)

	_, err := suite.makeUsecase().AssignMeeting(ctx, suite.caseId, suite.newMeetingId)

	suite.ErrorIs(err, models.ErrCaseMeetingAlreadyAssigned)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_AssignMeeting_RejectsArchivedCase() {
	ctx := context.Background()

	archivedCase := models.Case{Id: suite.caseId, Status: models.CaseArchived}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(archivedCase, nil)
	suite.enforceSecurity.On("AssignMeeting", archivedCase).Return(nil)

	_, err := suite.makeUsecase().AssignMeeting(ctx, suite.caseId, suite.meetingId)

	suite.ErrorIs(err, models.ErrCaseStatusTransitionNotAllowed)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_ReassignMeeting_MovesPendingCase() {
	ctx := context.Background()

	pendingCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CasePending,
		AssignedMeetingId: &suite.meetingId,
	}
	movedCase := pendingCase
	movedCase.AssignedMeetingId = &suite.newMeetingId

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(pendingCase, nil)
	suite.enforceSecurity.On("AssignMeeting", pendingCase).Return(nil)
	suite.meetingRepository.On("GetMeetingById", ctx, suite.transaction, suite.newMeetingId).
		Return(models.Meeting{Id: suite.newMeetingId, Status: models.MeetingScheduled}, nil)
	suite.caseRepository.On("ApplyCaseTransition", ctx, suite.transaction, models.CaseTransition{
		CaseId:          suite.caseId,
		Status:          models.CasePending,
		AssignMeetingId: &suite.newMeetingId,
	}, suite.now).Return(nil)
	suite.enforceSecurity.On("UserId").Return(suite.userId)
	previousValue := suite.meetingId.String()
	newValue := suite.newMeetingId.String()
	suite.caseRepository.On("CreateCaseEvent", ctx, suite.transaction, models.CreateCaseEventAttributes{
		CaseId:        suite.caseId,
		UserId:        suite.userId,
		EventType:     models.MeetingReassigned,
		NewValue:      &newValue,
		PreviousValue: &previousValue,
	}).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, suite.caseId).
		Return(movedCase, nil)

	c, err := suite.makeUsecase().ReassignMeeting(ctx, suite.caseId, &suite.newMeetingId)

	suite.NoError(err)
	suite.Equal(&suite.newMeetingId, c.AssignedMeetingId)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_ReassignMeeting_RejectsDraftCase() {
	ctx := context.Background()

	draftCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseDraft,
		AssignedMeetingId: &suite.meetingId,
	}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(draftCase, nil)
	suite.enforceSecurity.On("AssignMeeting", draftCase).Return(nil)

	_, err := suite.makeUsecase().ReassignMeeting(ctx, suite.caseId, &suite.newMeetingId)

	suite.ErrorIs(err, models.ErrCaseStatusTransitionNotAllowed)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_UnassignMeeting_FallsBackToSubmitted() {
	ctx := context.Background()

	resubmittedCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseResubmitted,
		AssignedMeetingId: &suite.meetingId,
	}
	unassignedCase := resubmittedCase
	unassignedCase.Status = models.CaseSubmitted
	unassignedCase.AssignedMeetingId = nil

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(resubmittedCase, nil)
	suite.enforceSecurity.On("UnassignMeeting", resubmittedCase).Return(nil)
	suite.caseRepository.On("ApplyCaseTransition", ctx, suite.transaction, models.CaseTransition{
		CaseId:       suite.caseId,
		Status:       models.CaseSubmitted,
		ClearMeeting: true,
	}, suite.now).Return(nil)
	suite.enforceSecurity.On("UserId").Return(suite.userId)
	previousValue := suite.meetingId.String()
	suite.caseRepository.On("CreateCaseEvent", ctx, suite.transaction, models.CreateCaseEventAttributes{
		CaseId:        suite.caseId,
		UserId:        suite.userId,
		EventType:     models.MeetingUnassigned,
		PreviousValue: &previousValue,
	}).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, suite.caseId).
		Return(unassignedCase, nil)

	c, err := suite.makeUsecase().UnassignMeeting(ctx, suite.caseId)

	suite.NoError(err)
	suite.Equal(models.CaseSubmitted, c.Status)
	suite.Nil(c.AssignedMeetingId)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_UnassignMeeting_DraftKeepsItsStatus() {
	ctx := context.Background()

	draftCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseDraft,
		AssignedMeetingId: &suite.meetingId,
	}
	unassignedCase := draftCase
	unassignedCase.AssignedMeetingId = nil

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(draftCase, nil)
	suite.enforceSecurity.On("UnassignMeeting", draftCase).Return(nil)
	suite.caseRepository.On("ApplyCaseTransition", ctx, suite.transaction, models.CaseTransition{
		CaseId:       suite.caseId,
		Status:       models.CaseDraft,
		ClearMeeting: true,
	}, suite.now).Return(nil)
	suite.enforceSecurity.On("UserId").Return(suite.userId)
	suite.caseRepository.On("CreateCaseEvent", ctx, suite.transaction, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, suite.caseId).
		Return(unassignedCase, nil)

	c, err := suite.makeUsecase().UnassignMeeting(ctx, suite.caseId)

	suite.NoError(err)
	suite.Equal(models.CaseDraft, c.Status)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_UnassignMeeting_ReviewedCaseIsLocked() {
	ctx := context.Background()

	reviewedCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseReviewed,
		AssignedMeetingId: &suite.meetingId,
	}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(reviewedCase, nil)
	suite.enforceSecurity.On("UnassignMeeting", reviewedCase).Return(nil)

	_, err := suite.makeUsecase().UnassignMeeting(ctx, suite.caseId)

	suite.ErrorIs(err, models.ErrCaseReviewLocked)
	suite.AssertExpectations()
}

// Archived cases are terminal: their meeting link stays frozen with the
// rest of the row.
func (suite *MeetingAssignmentTestSuite) Test_UnassignMeeting_RejectsArchivedCase() {
	ctx := context.Background()

	archivedCase := models.Case{
		Id:                suite.caseId,
		Status:            models.CaseArchived,
		AssignedMeetingId: &suite.meetingId,
	}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(archivedCase, nil)
	suite.enforceSecurity.On("UnassignMeeting", archivedCase).Return(nil)

	_, err := suite.makeUsecase().UnassignMeeting(ctx, suite.caseId)

	suite.ErrorIs(err, models.ErrCaseStatusTransitionNotAllowed)
	suite.caseRepository.AssertNotCalled(suite.T(), "ApplyCaseTransition",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_UnassignMeeting_NoMeetingAssigned() {
	ctx := context.Background()

	submittedCase := models.Case{Id: suite.caseId, Status: models.CaseSubmitted}

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseByIdForUpdate", ctx, suite.transaction, suite.caseId).
		Return(submittedCase, nil)
	suite.enforceSecurity.On("UnassignMeeting", submittedCase).Return(nil)

	_, err := suite.makeUsecase().UnassignMeeting(ctx, suite.caseId)

	suite.ErrorIs(err, models.ErrCaseNoMeetingAssigned)
	suite.AssertExpectations()
}

func (suite *MeetingAssignmentTestSuite) Test_ListCandidateMeetings() {
	ctx := context.Background()

	meetings := []models.Meeting{
		{Id: suite.meetingId, Status: models.MeetingScheduled},
		{Id: suite.newMeetingId, Status: models.MeetingScheduled},
	}

	suite.enforceSecurity.On("Permission", models.MEETING_READ).Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.meetingRepository.On("ListMeetings", ctx, suite.executor, models.MeetingFilters{
		UpcomingOnly: true,
		Statuses:     []models.MeetingStatus{models.MeetingScheduled},
	}).Return(meetings, nil)

	got, err := suite.makeUsecase().ListCandidateMeetings(ctx)

	suite.NoError(err)
	suite.Equal(meetings, got)
	suite.AssertExpectations()
}

func TestMeetingAssignmentUsecase(t *testing.T) {
	suite.Run(t, new(MeetingAssignmentTestSuite))
}
