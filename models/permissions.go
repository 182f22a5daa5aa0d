package models

type Permission int

const (
	CASE_READ Permission = iota
	CASE_CREATE
	CASE_EDIT
	CASE_SUBMIT
	CASE_ARCHIVE
	MEETING_READ
	MEETING_ASSIGN
	CONSENSUS_CREATE
	CONSENSUS_EDIT
	AUDIT_READ
)

// ROLES_PERMISSIONS holds the raw capability grants per role. Creator
// and department scoping on top of these grants lives in
// usecases/security, where the case being acted on is known.
var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER: {
		CASE_READ,
		MEETING_READ,
	},
	CONSULTANT: {
		CASE_READ,
		CASE_CREATE,
		CASE_EDIT,
		CASE_SUBMIT,
		MEETING_READ,
		MEETING_ASSIGN,
	},
	COORDINATOR: {
		CASE_READ,
		CASE_CREATE,
		CASE_EDIT,
		CASE_SUBMIT,
		CASE_ARCHIVE,
		MEETING_READ,
		MEETING_ASSIGN,
		CONSENSUS_CREATE,
		CONSENSUS_EDIT,
		AUDIT_READ,
	},
	ADMIN: {
		CASE_READ,
		CASE_CREATE,
		CASE_EDIT,
		CASE_SUBMIT,
		CASE_ARCHIVE,
		MEETING_READ,
		MEETING_ASSIGN,
		CONSENSUS_CREATE,
		CONSENSUS_EDIT,
		AUDIT_READ,
	},
}
