package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type DBMeeting struct {
	Id        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Date      time.Time `db:"date"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_MEETINGS = "meetings"

var SelectMeetingColumn = utils.ColumnList[DBMeeting]()

func AdaptMeeting(db DBMeeting) (models.Meeting, error) {
	return models.Meeting{
		Id:        db.Id,
		Title:     db.Title,
		Date:      db.Date,
		Status:    models.MeetingStatusFrom(db.Status),
		CreatedAt: db.CreatedAt,
	}, nil
}
