package models

import "github.com/google/uuid"

// River job argument types. Kind strings are part of the queue contract
// and must stay stable across deploys.

type CaseReviewNotificationArgs struct {
	CaseId       uuid.UUID `json:"case_id"`
	ReportId     uuid.UUID `json:"report_id"`
	RecipientIds []UserId  `json:"recipient_ids"`
}

func (CaseReviewNotificationArgs) Kind() string { return "case_review_notification" }

type StaleCaseSweepArgs struct{}

func (StaleCaseSweepArgs) Kind() string { return "stale_case_sweep" }
