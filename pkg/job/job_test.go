package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Matheus-hora48/Teste-Conectar/pkg/job"
)

func TestService_RunsJobUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().RegisterJob("counter", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_SurvivesErrorsAndPanics(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().RegisterJob("flaky", 10*time.Millisecond, func(context.Context) error {
		n := calls.Add(1)
		if n == 1 {
			panic("boom")
		}

		return errors.New("failed")
	})
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_TryRegisterJobDisabled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := job.NewService().
		TryRegisterJob(false, "disabled", 10*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		TryRegisterJob(true, "zero interval", 0, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	s.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	s.Stop()

	require.Zero(t, calls.Load())
}
