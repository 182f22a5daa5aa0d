package usecases

import (
	"time"

	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/repositories/clock"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/executor_factory"
	"github.com/NLight-n/ClarityMDT-sub000/usecases/worker_jobs"
)

type Repositories struct {
	ExecutorGetter      repositories.ExecutorGetter
	MdtDbRepository     repositories.MdtDbRepository
	TaskQueueRepository repositories.TaskQueueRepository
	JwtRepository       *repositories.JwtRepository
}

type Usecases struct {
	Repositories
	clock         clock.Clock
	tokenLifetime time.Duration
}

type Option func(*options)

type options struct {
	clock         clock.Clock
	tokenLifetime time.Duration
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.tokenLifetime = lifetime
	}
}

func NewUsecases(repositories Repositories, opts ...Option) Usecases {
	o := options{
		clock:         clock.New(),
		tokenLifetime: time.Hour,
	}
	for _, apply := range opts {
		apply(&o)
	}

	return Usecases{
		Repositories:  repositories,
		clock:         o.clock,
		tokenLifetime: o.tokenLifetime,
	}
}

func (usecases *Usecases) NewTokenUsecase() TokenUsecase {
	return TokenUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.MdtDbRepository,
		encoder:         usecases.JwtRepository,
		clock:           usecases.clock,
		tokenLifetime:   usecases.tokenLifetime,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.MdtDbRepository,
	}
}

// NewReconciliationUseCase is built without credentials: the sweep runs
// from the scheduler, not on behalf of a user.
func (usecases *Usecases) NewReconciliationUseCase() ReconciliationUseCase {
	return NewReconciliationUseCase(usecases.NewExecutorFactory(), usecases.MdtDbRepository)
}

func (usecases *Usecases) NewStaleCaseSweepWorker() *worker_jobs.StaleCaseSweepWorker {
	return worker_jobs.NewStaleCaseSweepWorker(usecases.NewReconciliationUseCase())
}

func (usecases *Usecases) NewCaseReviewNotificationWorker(
	dispatcher worker_jobs.NotificationDispatcher,
) *worker_jobs.CaseReviewNotificationWorker {
	return worker_jobs.NewCaseReviewNotificationWorker(
		usecases.NewExecutorFactory(),
		usecases.MdtDbRepository,
		dispatcher,
	)
}
