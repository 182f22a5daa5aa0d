package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseReviewedNotification is the single "review completed" event
// emitted per case when a consensus report is created. Fan-out to the
// individual recipients is the dispatcher's concern.
type CaseReviewedNotification struct {
	CaseId         uuid.UUID `json:"case_id"`
	CaseName       string    `json:"case_name"`
	ReportId       uuid.UUID `json:"report_id"`
	FinalDiagnosis string    `json:"final_diagnosis"`
	ReviewedAt     time.Time `json:"reviewed_at"`
	RecipientIds   []UserId  `json:"recipient_ids"`
}
