package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type Meeting struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptMeetingDto(meeting models.Meeting) Meeting {
	return Meeting{
		Id:        meeting.Id,
		Title:     meeting.Title,
		Date:      meeting.Date,
		Status:    string(meeting.Status),
		CreatedAt: meeting.CreatedAt,
	}
}
