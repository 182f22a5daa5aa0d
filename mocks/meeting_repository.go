package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type MeetingRepository struct {
	mock.Mock
}

func (r *MeetingRepository) GetMeetingById(ctx context.Context, exec repositories.Executor, meetingId uuid.UUID) (models.Meeting, error) {
	args := r.Called(ctx, exec, meetingId)
	return args.Get(0).(models.Meeting), args.Error(1)
}

func (r *MeetingRepository) ListMeetings(ctx context.Context, exec repositories.Executor, filters models.MeetingFilters) ([]models.Meeting, error) {
	args := r.Called(ctx, exec, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meeting), args.Error(1)
}
