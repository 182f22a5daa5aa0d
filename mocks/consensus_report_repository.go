package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type ConsensusReportRepository struct {
	mock.Mock
}

func (r *ConsensusReportRepository) GetConsensusReportByCaseId(ctx context.Context, exec repositories.Executor,
	caseId uuid.UUID,
) (*models.ConsensusReport, error) {
	args := r.Called(ctx, exec, caseId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsensusReport), args.Error(1)
}

func (r *ConsensusReportRepository) CreateConsensusReport(ctx context.Context, exec repositories.Executor,
	attributes models.CreateConsensusReportAttributes, newReportId uuid.UUID, createdBy models.UserId,
) error {
	args := r.Called(ctx, exec, attributes, newReportId, createdBy)
	return args.Error(0)
}

func (r *ConsensusReportRepository) UpdateConsensusReport(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateConsensusReportAttributes, now time.Time,
) error {
	args := r.Called(ctx, exec, attributes, now)
	return args.Error(0)
}
