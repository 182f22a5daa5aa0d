package security

import (
	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type EnforceSecurityConsensusReport interface {
	EnforceSecurity
	ReadConsensusReport(c models.Case) error
	CreateConsensusReport(c models.Case) error
	UpdateConsensusReport(c models.Case) error
}

type EnforceSecurityConsensusReportImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityConsensusReportImpl) ReadConsensusReport(c models.Case) error {
	return e.Permission(models.CASE_READ)
}

func (e *EnforceSecurityConsensusReportImpl) CreateConsensusReport(c models.Case) error {
	return e.Permission(models.CONSENSUS_CREATE)
}

func (e *EnforceSecurityConsensusReportImpl) UpdateConsensusReport(c models.Case) error {
	return e.Permission(models.CONSENSUS_EDIT)
}
