package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type DBCase struct {
	Id                     uuid.UUID  `db:"id"`
	Name                   string     `db:"name"`
	PatientReference       string     `db:"patient_reference"`
	PresentingDepartmentId uuid.UUID  `db:"presenting_department_id"`
	CreatedById            uuid.UUID  `db:"created_by_id"`
	Status                 string     `db:"status"`
	AssignedMeetingId      *uuid.UUID `db:"assigned_meeting_id"`
	SubmittedAt            *time.Time `db:"submitted_at"`
	ReviewedAt             *time.Time `db:"reviewed_at"`
	ArchivedAt             *time.Time `db:"archived_at"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:                     db.Id,
		Name:                   db.Name,
		PatientReference:       db.PatientReference,
		PresentingDepartmentId: db.PresentingDepartmentId,
		CreatedById:            db.CreatedById,
		Status:                 models.CaseStatusFrom(db.Status),
		AssignedMeetingId:      db.AssignedMeetingId,
		SubmittedAt:            db.SubmittedAt,
		ReviewedAt:             db.ReviewedAt,
		ArchivedAt:             db.ArchivedAt,
		CreatedAt:              db.CreatedAt,
		UpdatedAt:              db.UpdatedAt,
	}, nil
}
