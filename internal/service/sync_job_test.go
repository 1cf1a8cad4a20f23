package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyController считает вызовы Trigger, остальные методы — заглушки.
type spyController struct {
	triggers atomic.Int64
}

func (s *spyController) Initialize(context.Context, Delegate) error { return nil }
func (s *spyController) Trigger(context.Context)                   { s.triggers.Add(1) }
func (s *spyController) StartDownload(context.Context)             {}
func (s *spyController) SetDownloadConfirmed(bool)                 {}
func (s *spyController) IsSynchronized(context.Context) bool       { return false }

func waitForTriggers(t *testing.T, spy *spyController, want int64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if spy.triggers.Load() >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("ожидали не меньше %d вызовов Trigger, получили %d", want, spy.triggers.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestSyncJob_StartTriggersPeriodically(t *testing.T) {
	spy := &spyController{}
	job := NewSyncJob(spy)
	defer job.Stop()

	job.Start(context.Background(), 10*time.Millisecond)

	waitForTriggers(t, spy, 3)
}

func TestSyncJob_StopHaltsTriggers(t *testing.T) {
	spy := &spyController{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	waitForTriggers(t, spy, 1)

	job.Stop()
	after := spy.triggers.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, spy.triggers.Load())
}

func TestSyncJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewSyncJob(&spyController{})

	require.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestSyncJob_RestartReplacesPreviousJob(t *testing.T) {
	spy := &spyController{}
	job := NewSyncJob(spy)
	defer job.Stop()

	job.Start(context.Background(), time.Hour)
	// повторный Start должен остановить первый тикер и запустить новый
	job.Start(context.Background(), 10*time.Millisecond)

	waitForTriggers(t, spy, 2)
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyController{}
	job := NewSyncJob(spy)
	defer job.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	waitForTriggers(t, spy, 1)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := spy.triggers.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, spy.triggers.Load())
}
