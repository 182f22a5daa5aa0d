package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/security"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/worker_jobs"
)

// workflowStore backs scenario tests with an in-memory state that
// follows the same write semantics as the SQL repository, including the
// sweep predicate and the one-report-per-case unique constraint.
type workflowStore struct {
	clock    clock.Clock
	cases    map[uuid.UUID]models.Case
	meetings map[uuid.UUID]models.Meeting
	reports  map[uuid.UUID]models.ConsensusReport
	events   map[uuid.UUID][]models.CaseEvent
	users    map[uuid.UUID][]models.User
	enqueued []models.CaseReviewNotificationArgs
}

func newWorkflowStore(clk clock.Clock) *workflowStore {
	return &workflowStore{
		clock:    clk,
		cases:    map[uuid.UUID]models.Case{},
		meetings: map[uuid.UUID]models.Meeting{},
		reports:  map[uuid.UUID]models.ConsensusReport{},
		events:   map[uuid.UUID][]models.CaseEvent{},
		users:    map[uuid.UUID][]models.User{},
	}
}

func (s *workflowStore) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) (models.Case, error) {
	c, ok := s.cases[caseId]
	if !ok {
		return models.Case{}, errors.Wrap(models.NotFoundError, "case not found")
	}
	return c, nil
}

func (s *workflowStore) GetCaseByIdForUpdate(ctx context.Context, tx repositories.Transaction,
	caseId uuid.UUID,
) (models.Case, error) {
	return s.GetCaseById(ctx, tx, caseId)
}

func (s *workflowStore) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	cases := make([]models.Case, 0, len(s.cases))
	for _, c := range s.cases {
		cases = append(cases, c)
	}
	return cases, nil
}

func (s *workflowStore) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes, newCaseId uuid.UUID, createdBy models.UserId,
) error {
	now := s.clock.Now()
	s.cases[newCaseId] = models.Case{
		Id:                     newCaseId,
		Name:                   attributes.Name,
		PatientReference:       attributes.PatientReference,
		PresentingDepartmentId: attributes.PresentingDepartmentId,
		CreatedById:            createdBy,
		Status:                 models.CaseDraft,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return nil
}

func (s *workflowStore) UpdateCase(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateCaseAttributes,
) error {
	c := s.cases[attributes.Id]
	c.Name = attributes.Name
	c.PatientReference = attributes.PatientReference
	c.UpdatedAt = s.clock.Now()
	s.cases[attributes.Id] = c
	return nil
}

func (s *workflowStore) ApplyCaseTransition(ctx context.Context, exec repositories.Executor,
	transition models.CaseTransition, now time.Time,
) error {
	c := s.cases[transition.CaseId]
	c.Status = transition.Status
	if transition.AssignMeetingId != nil {
		c.AssignedMeetingId = transition.AssignMeetingId
	}
	if transition.ClearMeeting {
		c.AssignedMeetingId = nil
	}
	if transition.SubmittedAt != nil {
		c.SubmittedAt = transition.SubmittedAt
	}
	if transition.ReviewedAt != nil {
		c.ReviewedAt = transition.ReviewedAt
	}
	if transition.ArchivedAt != nil {
		c.ArchivedAt = transition.ArchivedAt
	}
	c.UpdatedAt = now
	s.cases[transition.CaseId] = c
	return nil
}

func (s *workflowStore) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	event := models.CaseEvent{
		Id:        uuid.New(),
		CaseId:    attributes.CaseId,
		UserId:    attributes.UserId,
		EventType: attributes.EventType,
		CreatedAt: s.clock.Now(),
	}
	if attributes.NewValue != nil {
		event.NewValue = *attributes.NewValue
	}
	if attributes.PreviousValue != nil {
		event.PreviousValue = *attributes.PreviousValue
	}
	s.events[attributes.CaseId] = append(s.events[attributes.CaseId], event)
	return nil
}

func (s *workflowStore) ListCaseEvents(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) ([]models.CaseEvent, error) {
	return s.events[caseId], nil
}

func (s *workflowStore) GetMeetingById(ctx context.Context, exec repositories.Executor,
	meetingId uuid.UUID,
) (models.Meeting, error) {
	meeting, ok := s.meetings[meetingId]
	if !ok {
		return models.Meeting{}, errors.Wrap(models.NotFoundError, "meeting not found")
	}
	return meeting, nil
}

func (s *workflowStore) ListMeetings(ctx context.Context, exec repositories.Executor,
	filters models.MeetingFilters,
) ([]models.Meeting, error) {
	meetings := make([]models.Meeting, 0, len(s.meetings))
	for _, meeting := range s.meetings {
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}

func (s *workflowStore) GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) (*models.ConsensusReport, error) {
	report, ok := s.reports[caseId]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

func (s *workflowStore) CreateConsensusReport(ctx context.Context, exec repositories.Executor,
	attributes models.CreateConsensusReportAttributes, newReportId uuid.UUID, createdBy models.UserId,
) error {
	if _, exists := s.reports[attributes.CaseId]; exists {
		return models.ErrConsensusReportAlreadyExists
	}
	now := s.clock.Now()
	s.reports[attributes.CaseId] = models.ConsensusReport{
		Id:             newReportId,
		CaseId:         attributes.CaseId,
		FinalDiagnosis: attributes.FinalDiagnosis,
		MdtConsensus:   attributes.MdtConsensus,
		MeetingDate:    attributes.MeetingDate,
		Remarks:        attributes.Remarks,
		CreatedById:    createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return nil
}

func (s *workflowStore) UpdateConsensusReport(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateConsensusReportAttributes, now time.Time,
) error {
	report := s.reports[attributes.CaseId]
	if attributes.FinalDiagnosis != nil {
		report.FinalDiagnosis = *attributes.FinalDiagnosis
	}
	if attributes.MdtConsensus != nil {
		report.MdtConsensus = *attributes.MdtConsensus
	}
	if attributes.MeetingDate != nil {
		report.MeetingDate = *attributes.MeetingDate
	}
	if attributes.Remarks != nil {
		report.Remarks = attributes.Remarks
	}
	report.UpdatedAt = now
	s.reports[attributes.CaseId] = report
	return nil
}

func (s *workflowStore) ListConsultantsOfDepartment(ctx context.Context, exec repositories.Executor,
	departmentId uuid.UUID,
) ([]models.User, error) {
	return s.users[departmentId], nil
}

func (s *workflowStore) EnqueueCaseReviewNotificationTx(ctx context.Context, tx repositories.Transaction,
	args models.CaseReviewNotificationArgs,
) error {
	s.enqueued = append(s.enqueued, args)
	return nil
}

// DemoteStaleSubmittedCases mirrors the sweep statement: submitted
// cases whose meeting date lies strictly before today, with no
// consensus report, fall back to pending. Date-only comparison.
func (s *workflowStore) DemoteStaleSubmittedCases(ctx context.Context, exec repositories.Executor) (int64, error) {
	today := startOfDay(s.clock.Now())
	var demoted int64
	for id, c := range s.cases {
		if c.Status != models.CaseSubmitted || c.AssignedMeetingId == nil {
			continue
		}
		meeting, ok := s.meetings[*c.AssignedMeetingId]
		if !ok || !startOfDay(meeting.Date).Before(today) {
			continue
		}
		if _, hasReport := s.reports[id]; hasReport {
			continue
		}
		c.Status = models.CasePending
		c.UpdatedAt = s.clock.Now()
		s.cases[id] = c
		demoted++
	}
	return demoted, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func adminCaseUsecases(store *workflowStore, clk clock.Clock, adminId models.UserId) (*CaseUseCase, *ConsensusReportUseCase) {
	credentials := models.Credentials{
		ActorIdentity: models.Identity{UserId: adminId},
		Role:          models.ADMIN,
	}
	enforce := &security.EnforceSecurityImpl{Credentials: credentials}
	factory := executor_factory.NewExecutorFactoryStub()

	caseUsecase := &CaseUseCase{
		enforceSecurity:   &security.EnforceSecurityCaseImpl{EnforceSecurity: enforce, Credentials: credentials},
		executorFactory:   factory,
		repository:        store,
		meetingRepository: store,
		reportRepository:  store,
		clock:             clk,
	}
	consensusUsecase := &ConsensusReportUseCase{
		enforceSecurity: &security.EnforceSecurityConsensusReportImpl{EnforceSecurity: enforce, Credentials: credentials},
		executorFactory: factory,
		caseRepository:  store,
		repository:      store,
		userRepository:  store,
		taskQueue:       store,
		clock:           clk,
	}
	return caseUsecase, consensusUsecase
}

// The sweep must demote exactly the stale shape: submitted, meeting
// date passed, no consensus report. Everything else stays put, and
// running the sweep twice changes nothing.
func TestStaleCaseSweepDemotesOnlyStaleSubmittedCases(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2027, 3, 12, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMock(now)
	store := newWorkflowStore(clk)

	pastMeetingId := uuid.New()
	futureMeetingId := uuid.New()
	store.meetings[pastMeetingId] = models.Meeting{
		Id: pastMeetingId, Status: models.MeetingScheduled, Date: now.AddDate(0, 0, -1),
	}
	store.meetings[futureMeetingId] = models.Meeting{
		Id: futureMeetingId, Status: models.MeetingScheduled, Date: now.AddDate(0, 0, 1),
	}

	staleId := uuid.New()
	reportedId := uuid.New()
	pendingId := uuid.New()
	upcomingId := uuid.New()
	store.cases[staleId] = models.Case{
		Id: staleId, Status: models.CaseSubmitted, AssignedMeetingId: &pastMeetingId,
	}
	store.cases[reportedId] = models.Case{
		Id: reportedId, Status: models.CaseSubmitted, AssignedMeetingId: &pastMeetingId,
	}
	store.reports[reportedId] = models.ConsensusReport{Id: uuid.New(), CaseId: reportedId}
	store.cases[pendingId] = models.Case{
		Id: pendingId, Status: models.CasePending, AssignedMeetingId: &pastMeetingId,
	}
	store.cases[upcomingId] = models.Case{
		Id: upcomingId, Status: models.CaseSubmitted, AssignedMeetingId: &futureMeetingId,
	}

	reconciliation := NewReconciliationUseCase(executor_factory.NewExecutorFactoryStub(), store)

	demoted, err := reconciliation.SweepStaleSubmittedCases(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), demoted)
	assert.Equal(t, models.CasePending, store.cases[staleId].Status)
	assert.Equal(t, models.CaseSubmitted, store.cases[reportedId].Status,
		"a case with a consensus report must not be demoted")
	assert.Equal(t, models.CasePending, store.cases[pendingId].Status)
	assert.Equal(t, models.CaseSubmitted, store.cases[upcomingId].Status,
		"a case whose meeting has not happened yet must not be demoted")

	// the worker runs the same sweep; a second pass is a no-op
	worker := worker_jobs.NewStaleCaseSweepWorker(reconciliation)
	require.NoError(t, worker.Work(ctx, &river.Job[models.StaleCaseSweepArgs]{}))
	demoted, err = reconciliation.SweepStaleSubmittedCases(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), demoted)
}

// Full journey of a case: created as a draft, submitted to a meeting,
// demoted by the sweep after the meeting passes, reviewed through a
// consensus report, resubmitted for correction and finally archived.
func TestCaseLifecycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2027, 3, 12, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMock(now)
	store := newWorkflowStore(clk)

	adminId := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	consultantId := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	departmentId := uuid.MustParse("00000000-0000-0000-0000-000000000031")
	meetingId := uuid.New()

	store.meetings[meetingId] = models.Meeting{
		Id: meetingId, Status: models.MeetingScheduled, Date: now.AddDate(0, 0, -1),
	}
	store.users[departmentId] = []models.User{{UserId: consultantId, Role: models.CONSULTANT}}

	caseUsecase, consensusUsecase := adminCaseUsecases(store, clk, adminId)
	reconciliation := NewReconciliationUseCase(executor_factory.NewExecutorFactoryStub(), store)

	created, err := caseUsecase.CreateCase(ctx, models.CreateCaseAttributes{
		Name:                   "Hepatic lesion workup",
		PatientReference:       "PT-2027-113",
		PresentingDepartmentId: departmentId,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CaseDraft, created.Status)

	submitted, err := caseUsecase.SubmitCase(ctx, created.Id, meetingId)
	require.NoError(t, err)
	assert.Equal(t, models.CaseSubmitted, submitted.Status)
	assert.Equal(t, &now, submitted.SubmittedAt)

	demoted, err := reconciliation.SweepStaleSubmittedCases(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), demoted)
	assert.Equal(t, models.CasePending, store.cases[created.Id].Status)

	report, err := consensusUsecase.CreateConsensusReport(ctx, models.CreateConsensusReportAttributes{
		CaseId:         created.Id,
		FinalDiagnosis: "Hepatocellular carcinoma, BCLC stage A",
		MdtConsensus:   "Proceed to surgical resection",
		MeetingDate:    now.AddDate(0, 0, -1),
	})
	require.NoError(t, err)
	reviewed := store.cases[created.Id]
	assert.Equal(t, models.CaseReviewed, reviewed.Status)
	assert.Equal(t, &now, reviewed.ReviewedAt)
	require.Len(t, store.enqueued, 1)
	assert.Equal(t, created.Id, store.enqueued[0].CaseId)
	assert.Equal(t, report.Id, store.enqueued[0].ReportId)
	assert.ElementsMatch(t, []models.UserId{adminId, consultantId}, store.enqueued[0].RecipientIds)

	demoted, err = reconciliation.SweepStaleSubmittedCases(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), demoted, "a reviewed case is out of the sweep's reach")

	resubmitted, err := caseUsecase.ResubmitCase(ctx, created.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CaseResubmitted, resubmitted.Status)
	assert.NotNil(t, store.reports[created.Id].Id, "resubmission keeps the consensus report")

	archived, err := caseUsecase.ArchiveCase(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, models.CaseArchived, archived.Status)
	assert.Equal(t, &now, archived.ArchivedAt)

	eventTypes := make([]models.CaseEventType, 0, len(store.events[created.Id]))
	for _, event := range store.events[created.Id] {
		eventTypes = append(eventTypes, event.EventType)
	}
	assert.Equal(t, []models.CaseEventType{
		models.CaseCreated,
		models.CaseSubmittedEvent,
		models.ConsensusRecorded,
		models.CaseResubmittedEvent,
		models.CaseArchivedEvent,
	}, eventTypes)
}
