package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type DBCaseEvent struct {
	Id            uuid.UUID `db:"id"`
	CaseId        uuid.UUID `db:"case_id"`
	UserId        uuid.UUID `db:"user_id"`
	CreatedAt     time.Time `db:"created_at"`
	EventType     string    `db:"event_type"`
	NewValue      *string   `db:"new_value"`
	PreviousValue *string   `db:"previous_value"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	var newValue, previousValue string
	if db.NewValue != nil {
		newValue = *db.NewValue
	}
	if db.PreviousValue != nil {
		previousValue = *db.PreviousValue
	}
	return models.CaseEvent{
		Id:            db.Id,
		CaseId:        db.CaseId,
		UserId:        db.UserId,
		CreatedAt:     db.CreatedAt,
		EventType:     models.CaseEventTypeFrom(db.EventType),
		NewValue:      newValue,
		PreviousValue: previousValue,
	}, nil
}
