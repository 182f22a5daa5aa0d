package worker_jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/mocks"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) (models.Case, error) {
	args := m.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (m *mockNotificationRepository) GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) (*models.ConsensusReport, error) {
	args := m.Called(ctx, exec, caseId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsensusReport), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) SendCaseReviewed(ctx context.Context, notification models.CaseReviewedNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func TestCaseReviewNotificationWorker(t *testing.T) {
	ctx := context.Background()

	caseId := uuid.MustParse("00000000-0000-0000-0000-000000000011")
	reportId := uuid.MustParse("00000000-0000-0000-0000-000000000041")
	recipientId := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	reviewedAt := time.Date(2027, 3, 12, 10, 0, 0, 0, time.UTC)

	repository := new(mockNotificationRepository)
	dispatcher := new(mockDispatcher)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)

	executorFactory.On("NewExecutor").Return(executor)
	repository.On("GetCaseById", mock.Anything, executor, caseId).
		Return(models.Case{
			Id:         caseId,
			Name:       "Hepatic lesion workup",
			Status:     models.CaseReviewed,
			ReviewedAt: &reviewedAt,
		}, nil)
	repository.On("GetConsensusReportByCaseId", mock.Anything, executor, caseId).
		Return(&models.ConsensusReport{
			Id:             reportId,
			CaseId:         caseId,
			FinalDiagnosis: "Hepatocellular carcinoma",
		}, nil)
	dispatcher.On("SendCaseReviewed", mock.Anything, models.CaseReviewedNotification{
		CaseId:         caseId,
		CaseName:       "Hepatic lesion workup",
		ReportId:       reportId,
		FinalDiagnosis: "Hepatocellular carcinoma",
		ReviewedAt:     reviewedAt,
		RecipientIds:   []models.UserId{recipientId},
	}).Return(nil)

	worker := NewCaseReviewNotificationWorker(executorFactory, repository, dispatcher)
	err := worker.Work(ctx, &river.Job[models.CaseReviewNotificationArgs]{
		Args: models.CaseReviewNotificationArgs{
			CaseId:       caseId,
			ReportId:     reportId,
			RecipientIds: []models.UserId{recipientId},
		},
	})

	assert.NoError(t, err)
	repository.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCaseReviewNotificationWorker_SkipsWhenReportIsGone(t *testing.T) {
	ctx := context.Background()

	caseId := uuid.MustParse("00000000-0000-0000-0000-000000000011")

	repository := new(mockNotificationRepository)
	dispatcher := new(mockDispatcher)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)

	executorFactory.On("NewExecutor").Return(executor)
	repository.On("GetCaseById", mock.Anything, executor, caseId).
		Return(models.Case{Id: caseId, Status: models.CaseResubmitted}, nil)
	repository.On("GetConsensusReportByCaseId", mock.Anything, executor, caseId).
		Return(nil, nil)

	worker := NewCaseReviewNotificationWorker(executorFactory, repository, dispatcher)
	err := worker.Work(ctx, &river.Job[models.CaseReviewNotificationArgs]{
		Args: models.CaseReviewNotificationArgs{CaseId: caseId},
	})

	assert.NoError(t, err)
	dispatcher.AssertNotCalled(t, "SendCaseReviewed", mock.Anything, mock.Anything)
	repository.AssertExpectations(t)
}
