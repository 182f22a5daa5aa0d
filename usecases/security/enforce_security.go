package security

import (
	"github.com/cockroachdb/errors"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
	UserId() models.UserId
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

// Permission denials carry a generic message on purpose: an
// unauthorized caller learns nothing about the resource it targeted.
func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrap(models.ForbiddenError, "access denied")
	}
	return nil
}

func (e *EnforceSecurityImpl) UserId() models.UserId {
	return e.Credentials.ActorIdentity.UserId
}
