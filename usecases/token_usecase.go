package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
)

type tokenEncoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type tokenUserRepository interface {
	GetUserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error)
}

type TokenUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  tokenUserRepository
	encoder         tokenEncoder
	clock           clock.Clock
	tokenLifetime   time.Duration
}

func (usecase TokenUsecase) GenerateToken(ctx context.Context, userId uuid.UUID) (string, time.Time, error) {
	user, err := usecase.userRepository.GetUserById(ctx, usecase.executorFactory.NewExecutor(), userId)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return "", time.Time{}, errors.Wrap(models.ErrUnknownUser, "no user with this id")
		}
		return "", time.Time{}, err
	}

	expirationTime := usecase.clock.Now().Add(usecase.tokenLifetime)
	token, err := usecase.encoder.EncodeToken(expirationTime, user.IntoCredentials())
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expirationTime, nil
}
