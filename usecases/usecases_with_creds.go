package usecases

import (
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/security"
)

// UsecasesWithCreds builds per-request usecases bound to the caller's
// credentials. Every security check downstream derives from them.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceConsensusReportSecurity() security.EnforceSecurityConsensusReport {
	return &security.EnforceSecurityConsensusReportImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		enforceSecurity:   usecases.NewEnforceCaseSecurity(),
		executorFactory:   usecases.NewExecutorFactory(),
		repository:        usecases.MdtDbRepository,
		meetingRepository: usecases.MdtDbRepository,
		reportRepository:  usecases.MdtDbRepository,
		clock:             usecases.clock,
	}
}

func (usecases *UsecasesWithCreds) NewMeetingAssignmentUseCase() MeetingAssignmentUseCase {
	return MeetingAssignmentUseCase{
		enforceSecurity:   usecases.NewEnforceCaseSecurity(),
		executorFactory:   usecases.NewExecutorFactory(),
		caseRepository:    usecases.MdtDbRepository,
		meetingRepository: usecases.MdtDbRepository,
		clock:             usecases.clock,
	}
}

func (usecases *UsecasesWithCreds) NewConsensusReportUseCase() ConsensusReportUseCase {
	return ConsensusReportUseCase{
		enforceSecurity: usecases.NewEnforceConsensusReportSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		caseRepository:  usecases.MdtDbRepository,
		repository:      usecases.MdtDbRepository,
		userRepository:  usecases.MdtDbRepository,
		taskQueue:       usecases.TaskQueueRepository,
		clock:           usecases.clock,
	}
}
