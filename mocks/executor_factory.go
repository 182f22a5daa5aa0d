package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NLight-n/ClarityMDT-sub000/repositories"
)

type ExecutorFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	return args.Get(0).(repositories.Executor)
}

func (f *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := f.Called(ctx, fn)
	err := fn(f.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
