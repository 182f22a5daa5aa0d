package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Case lifecycle related errors
var (
	ErrCaseStatusTransitionNotAllowed = errors.Wrap(ConflictError,
		"case status does not allow this transition")
	ErrCaseMeetingAlreadyAssigned = errors.Wrap(ConflictError,
		"case already has an assigned meeting, reassign instead")
	ErrCaseNoMeetingAssigned = errors.Wrap(BadParameterError,
		"case has no assigned meeting")
	ErrCaseReviewLocked = errors.Wrap(ConflictError,
		"cannot unassign the meeting of a reviewed case")

	// assignment target validation
	ErrMeetingUnavailable = errors.Wrap(BadParameterError,
		"target meeting is cancelled, completed or absent")

	// consensus report uniqueness
	ErrConsensusReportAlreadyExists = errors.Wrap(ConflictError,
		"a consensus report already exists for this case")
)
