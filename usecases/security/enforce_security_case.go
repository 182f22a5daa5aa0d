package security

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	ReadCaseEvents(c models.Case) error
	CreateCase(departmentId uuid.UUID) error
	UpdateCase(c models.Case) error
	SubmitCase(c models.Case) error
	ResubmitCase(c models.Case) error
	AssignMeeting(c models.Case) error
	UnassignMeeting(c models.Case) error
	ArchiveCase(c models.Case) error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	return e.Permission(models.CASE_READ)
}

// ReadCaseEvents guards the audit trail: reading a case does not imply
// reading its event history.
func (e *EnforceSecurityCaseImpl) ReadCaseEvents(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_READ), e.Permission(models.AUDIT_READ))
}

func (e *EnforceSecurityCaseImpl) CreateCase(departmentId uuid.UUID) error {
	if err := e.Permission(models.CASE_CREATE); err != nil {
		return err
	}

	switch e.Credentials.Role {
	case models.ADMIN:
		return nil
	case models.COORDINATOR:
		// a coordinator without a department may create cases anywhere
		if e.Credentials.DepartmentId == nil || *e.Credentials.DepartmentId == departmentId {
			return nil
		}
	case models.CONSULTANT:
		if e.Credentials.DepartmentId != nil && *e.Credentials.DepartmentId == departmentId {
			return nil
		}
	}
	return errors.Wrap(models.ForbiddenError, "access denied")
}

func (e *EnforceSecurityCaseImpl) UpdateCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_EDIT), e.actorMayActOn(c))
}

func (e *EnforceSecurityCaseImpl) SubmitCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_SUBMIT), e.actorMayActOn(c))
}

func (e *EnforceSecurityCaseImpl) ResubmitCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_SUBMIT), e.actorMayActOn(c))
}

func (e *EnforceSecurityCaseImpl) AssignMeeting(c models.Case) error {
	return errors.Join(e.Permission(models.MEETING_ASSIGN), e.actorMayActOn(c))
}

func (e *EnforceSecurityCaseImpl) UnassignMeeting(c models.Case) error {
	return errors.Join(e.Permission(models.MEETING_ASSIGN), e.actorMayActOn(c))
}

func (e *EnforceSecurityCaseImpl) ArchiveCase(c models.Case) error {
	return e.Permission(models.CASE_ARCHIVE)
}

// actorMayActOn scopes transition rights: admins and coordinators act on
// any case, consultants only on cases they created within their own
// department.
func (e *EnforceSecurityCaseImpl) actorMayActOn(c models.Case) error {
	switch e.Credentials.Role {
	case models.ADMIN, models.COORDINATOR:
		return nil
	}
	if c.CreatedById != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "access denied")
	}
	if e.Credentials.DepartmentId == nil || *e.Credentials.DepartmentId != c.PresentingDepartmentId {
		return errors.Wrap(models.ForbiddenError, "access denied")
	}
	return nil
}
