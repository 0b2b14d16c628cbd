package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *stubSweeper) Handle(context.Context, commands.SweepDeliveriesCommand) (int, error) {
	s.calls.Add(1)
	return 0, s.err
}

type stubReaper struct {
	calls atomic.Int32
	err   error
}

func (s *stubReaper) Handle(context.Context, commands.ReapArchivedDeliveriesCommand) (int, error) {
	s.calls.Add(1)
	return 0, s.err
}

// syncBuffer lets cron goroutines write log output while the test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func bufferLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestNewJobs_RejectSubSecondIntervals(t *testing.T) {
	_, err := jobs.NewDeliverySweepJob(&stubSweeper{}, 500*time.Millisecond, testutil.DiscardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = jobs.NewArchiveRetentionJob(&stubReaper{}, 0, testutil.DiscardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewJobs_RejectFractionalSecondIntervals(t *testing.T) {
	_, err := jobs.NewDeliverySweepJob(&stubSweeper{}, 1500*time.Millisecond, testutil.DiscardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = jobs.NewArchiveRetentionJob(&stubReaper{}, 5*time.Second+time.Millisecond, testutil.DiscardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = jobs.NewArchiveRetentionJob(&stubReaper{}, 2*time.Second, testutil.DiscardLogger())
	require.NoError(t, err)
}

func TestDeliverySweepJob_RunOnce(t *testing.T) {
	t.Run("should stay quiet on an empty store", func(t *testing.T) {
		logger, buf := bufferLogger()
		job, err := jobs.NewDeliverySweepJob(&stubSweeper{err: commands.ErrNoDeliveriesFound}, time.Second, logger)
		require.NoError(t, err)

		job.RunOnce(t.Context())

		assert.NotContains(t, buf.String(), "failed")
	})

	t.Run("should log unexpected errors", func(t *testing.T) {
		logger, buf := bufferLogger()
		job, err := jobs.NewDeliverySweepJob(&stubSweeper{err: errors.New("boom")}, time.Second, logger)
		require.NoError(t, err)

		job.RunOnce(t.Context())

		assert.Contains(t, buf.String(), "Delivery sweep job failed")
		assert.Contains(t, buf.String(), "boom")
	})
}

func TestArchiveRetentionJob_RunOnce(t *testing.T) {
	logger, buf := bufferLogger()
	reaper := &stubReaper{err: errors.New("delete failed")}
	job, err := jobs.NewArchiveRetentionJob(reaper, time.Second, logger)
	require.NoError(t, err)

	job.RunOnce(t.Context())

	assert.Equal(t, int32(1), reaper.calls.Load())
	assert.Contains(t, buf.String(), "Archive retention job failed")
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	sweeper := &stubSweeper{err: commands.ErrNoDeliveriesFound}
	reaper := &stubReaper{}

	sweepJob, err := jobs.NewDeliverySweepJob(sweeper, time.Second, testutil.DiscardLogger())
	require.NoError(t, err)
	retentionJob, err := jobs.NewArchiveRetentionJob(reaper, time.Second, testutil.DiscardLogger())
	require.NoError(t, err)

	manager := jobs.NewJobManager(sweepJob, retentionJob)
	require.NoError(t, manager.StartAll())

	require.Eventually(t, func() bool {
		return sweeper.calls.Load() > 0 && reaper.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)

	manager.StopAll()

	sweeps, reaps := sweeper.calls.Load(), reaper.calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, sweeps, sweeper.calls.Load(), "no sweep after StopAll")
	assert.Equal(t, reaps, reaper.calls.Load(), "no reap after StopAll")
}
