package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

type fixtureSource struct{}

func (fixtureSource) Payments() []models.Payment   { return fixtures.Payments() }
func (fixtureSource) Contracts() []models.Contract { return fixtures.Contracts() }

type panicSource struct{ fixtureSource }

func (panicSource) Payments() []models.Payment { panic("boom") }

// gateSource blocks Payments until release is closed.
type gateSource struct {
	fixtureSource
	entered chan struct{}
	release chan struct{}
}

func (g gateSource) Payments() []models.Payment {
	close(g.entered)
	<-g.release
	return fixtures.Payments()
}

type countingRecorder struct{ runs map[string]int }

func (r *countingRecorder) DigestRun(outcome string) {
	if r.runs == nil {
		r.runs = map[string]int{}
	}
	r.runs[outcome]++
}

var jan20 = time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

func TestBuildDigest(t *testing.T) {
	t.Parallel()

	d := BuildDigest(fixtureSource{}, 60, jan20)
	assert.Equal(t, "2024-01-20", d.Date)

	for _, p := range d.Overdue {
		assert.Positive(t, p.DaysOverdue)
		assert.NotEqual(t, models.PaymentPaid, findPayment(t, p.ID).Status)
	}

	var ids []string
	for _, p := range d.Overdue {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "PG-004")

	for _, c := range d.Expiring {
		assert.GreaterOrEqual(t, c.DaysRemaining, 0)
		assert.LessOrEqual(t, c.DaysRemaining, 60)
	}
}

func findPayment(t *testing.T, id string) models.Payment {
	t.Helper()
	for _, p := range fixtures.Payments() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("payment %s not found", id)
	return models.Payment{}
}

func TestBuildDigestWindowZero(t *testing.T) {
	t.Parallel()

	d := BuildDigest(fixtureSource{}, 0, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, d.Expiring)
	assert.NotNil(t, d.Expiring)
}

func newTestNotifier(src Source, cfg config.DigestConfig) (*Notifier, *observer.ObservedLogs, *countingRecorder) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := &countingRecorder{}
	n := NewNotifier(src, cfg, zap.New(core), rec)
	n.now = func() time.Time { return jan20 }
	return n, logs, rec
}

func TestRunOnceLogsFindings(t *testing.T) {
	t.Parallel()

	n, logs, rec := newTestNotifier(fixtureSource{}, config.DigestConfig{ExpiryWindow: 60})
	d := n.RunOnce()

	assert.Equal(t, len(d.Overdue), logs.FilterMessage("overdue payment").Len())
	assert.Equal(t, len(d.Expiring), logs.FilterMessage("contract expiring").Len())

	done := logs.FilterMessage("rent digest completed").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(len(d.Overdue)), done[0].ContextMap()["overdue"])
	assert.Equal(t, "digest", done[0].LoggerName)
	assert.Equal(t, 1, rec.runs["ok"])
}

func TestRunOnceRecoversPanics(t *testing.T) {
	t.Parallel()

	n, logs, rec := newTestNotifier(panicSource{}, config.DigestConfig{})
	assert.NotPanics(t, func() { n.RunOnce() })
	assert.Equal(t, 1, logs.FilterMessage("rent digest failed").Len())
	assert.Equal(t, 1, rec.runs["error"])
}

func TestStartDisabled(t *testing.T) {
	t.Parallel()

	n, logs, rec := newTestNotifier(fixtureSource{}, config.DigestConfig{Enabled: false})
	require.NoError(t, n.Start())
	assert.Equal(t, 1, logs.FilterMessage("rent digest disabled").Len())
	assert.Empty(t, rec.runs)
	n.Stop(context.Background())
}

func TestStartRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	n, _, _ := newTestNotifier(fixtureSource{}, config.DigestConfig{Enabled: true, Schedule: "every day"})
	assert.Error(t, n.Start())
}

func TestStopWaitsForStartupRun(t *testing.T) {
	t.Parallel()

	src := gateSource{entered: make(chan struct{}), release: make(chan struct{})}
	n, logs, rec := newTestNotifier(src, config.DigestConfig{Enabled: true, Schedule: "0 8 * * *", ExpiryWindow: 60})
	require.NoError(t, n.Start())
	<-src.entered

	stopped := make(chan struct{})
	go func() {
		n.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while the startup digest was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(src.release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after the digest finished")
	}
	assert.Equal(t, 1, rec.runs["ok"])
	assert.Equal(t, 1, logs.FilterMessage("rent digest completed").Len())
}

func TestStopHonoursContext(t *testing.T) {
	t.Parallel()

	src := gateSource{entered: make(chan struct{}), release: make(chan struct{})}
	n, _, _ := newTestNotifier(src, config.DigestConfig{Enabled: true, Schedule: "0 8 * * *"})
	require.NoError(t, n.Start())
	<-src.entered
	t.Cleanup(func() { close(src.release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	n.Stop(ctx)
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
