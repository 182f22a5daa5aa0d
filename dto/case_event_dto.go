package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type CaseEvent struct {
	Id            uuid.UUID `json:"id"`
	CaseId        uuid.UUID `json:"case_id"`
	UserId        uuid.UUID `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	EventType     string    `json:"event_type"`
	NewValue      string    `json:"new_value,omitempty"`
	PreviousValue string    `json:"previous_value,omitempty"`
}

func AdaptCaseEventDto(event models.CaseEvent) CaseEvent {
	return CaseEvent{
		Id:            event.Id,
		CaseId:        event.CaseId,
		UserId:        event.UserId,
		CreatedAt:     event.CreatedAt,
		EventType:     string(event.EventType),
		NewValue:      event.NewValue,
		PreviousValue: event.PreviousValue,
	}
}
