package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/mocks"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
)

type mockTokenEncoder struct {
	mock.Mock
}

func (m *mockTokenEncoder) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func TestGenerateToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2027, 3, 12, 10, 0, 0, 0, time.UTC)
	userId := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	departmentId := uuid.MustParse("00000000-0000-0000-0000-000000000011")

	user := models.User{
		UserId:       userId,
		Email:        "j.doe@hospital.example",
		Role:         models.COORDINATOR,
		DepartmentId: &departmentId,
	}

	userRepository := new(mocks.UserRepository)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)
	encoder := new(mockTokenEncoder)

	executorFactory.On("NewExecutor").Return(executor)
	userRepository.On("GetUserById", ctx, executor, userId).Return(user, nil)
	encoder.On("EncodeToken", now.Add(time.Hour), user.IntoCredentials()).
		Return("signed-token", nil)

	usecase := TokenUsecase{
		executorFactory: executorFactory,
		userRepository:  userRepository,
		encoder:         encoder,
		clock:           clock.NewMock(now),
		tokenLifetime:   time.Hour,
	}

	token, expirationTime, err := usecase.GenerateToken(ctx, userId)

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, now.Add(time.Hour), expirationTime)
	userRepository.AssertExpectations(t)
	encoder.AssertExpectations(t)
}

func TestGenerateToken_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userId := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	userRepository := new(mocks.UserRepository)
	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)

	executorFactory.On("NewExecutor").Return(executor)
	userRepository.On("GetUserById", ctx, executor, userId).
		Return(models.User{}, models.NotFoundError)

	usecase := TokenUsecase{
		executorFactory: executorFactory,
		userRepository:  userRepository,
		encoder:         new(mockTokenEncoder),
		clock:           clock.NewMock(time.Now()),
		tokenLifetime:   time.Hour,
	}

	_, _, err := usecase.GenerateToken(ctx, userId)

	assert.ErrorIs(t, err, models.ErrUnknownUser)
	userRepository.AssertExpectations(t)
}
