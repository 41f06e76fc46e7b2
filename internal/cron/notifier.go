// Package cron runs the daily rent digest: a log summary of overdue
// payments and contracts nearing their end date. Nothing is delivered.
package cron

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/rentcalc"
)

// Source is the data the digest reads; *store.Catalog satisfies it.
type Source interface {
	Payments() []models.Payment
	Contracts() []models.Contract
}

// Recorder counts runs; *metrics.Metrics satisfies it.
type Recorder interface {
	DigestRun(outcome string)
}

type OverduePayment struct {
	ID          string                  `json:"id"`
	Tenant      string                  `json:"tenant"`
	Property    string                  `json:"property"`
	Amount      decimal.Decimal         `json:"amount"`
	DaysOverdue int                     `json:"daysOverdue"`
	Range       models.DelinquencyRange `json:"range"`
}

type ExpiringContract struct {
	ID            string `json:"id"`
	Tenant        string `json:"tenant"`
	Property      string `json:"property"`
	EndDate       string `json:"endDate"`
	DaysRemaining int    `json:"daysRemaining"`
}

// Digest is one run's findings.
type Digest struct {
	Date     string             `json:"date"`
	Overdue  []OverduePayment   `json:"overdue"`
	Expiring []ExpiringContract `json:"expiring"`
}

// BuildDigest lists unsettled payments past their due date and contracts
// ending within window days of now.
func BuildDigest(src Source, window int, now time.Time) Digest {
	d := Digest{
		Date:     now.Format(models.DateLayout),
		Overdue:  []OverduePayment{},
		Expiring: []ExpiringContract{},
	}

	for _, p := range src.Payments() {
		days := rentcalc.PaymentDaysOverdue(p, now)
		if days == 0 {
			continue
		}
		d.Overdue = append(d.Overdue, OverduePayment{
			ID:          p.ID,
			Tenant:      p.Tenant,
			Property:    p.Property,
			Amount:      p.TotalAmount,
			DaysOverdue: days,
			Range:       models.RangeForDays(days),
		})
	}

	for _, c := range src.Contracts() {
		if !rentcalc.ExpiresWithin(c, window, now) {
			continue
		}
		days, _ := rentcalc.ContractRemainingDays(c, now)
		d.Expiring = append(d.Expiring, ExpiringContract{
			ID:            c.ID,
			Tenant:        c.Tenant,
			Property:      c.Property,
			EndDate:       c.EndDate,
			DaysRemaining: days,
		})
	}
	return d
}

// Notifier schedules the digest.
type Notifier struct {
	cron    *cron.Cron
	src     Source
	cfg     config.DigestConfig
	log     *zap.Logger
	rec     Recorder
	now     func() time.Time
	running bool
	initial sync.WaitGroup
}

func NewNotifier(src Source, cfg config.DigestConfig, log *zap.Logger, rec Recorder) *Notifier {
	log = log.Named("digest")
	return &Notifier{
		cron: cron.New(cron.WithLogger(cron.PrintfLogger(zap.NewStdLog(log)))),
		src:  src,
		cfg:  cfg,
		log:  log,
		rec:  rec,
		now:  time.Now,
	}
}

// Start registers the schedule and runs one digest right away. It is a
// no-op when the digest is disabled.
func (n *Notifier) Start() error {
	if !n.cfg.Enabled {
		n.log.Info("rent digest disabled")
		return nil
	}

	if _, err := n.cron.AddFunc(n.cfg.Schedule, func() { n.RunOnce() }); err != nil {
		return fmt.Errorf("schedule rent digest %q: %w", n.cfg.Schedule, err)
	}

	n.initial.Add(1)
	go func() {
		defer n.initial.Done()
		n.RunOnce()
	}()

	n.cron.Start()
	n.running = true
	n.log.Info("rent digest started", zap.String("schedule", n.cfg.Schedule), zap.Int("expiry_window_days", n.cfg.ExpiryWindow))
	return nil
}

// Stop waits for running digests, the startup one included, to finish or
// ctx to end.
func (n *Notifier) Stop(ctx context.Context) {
	if !n.running {
		return
	}
	done := make(chan struct{})
	go func() {
		<-n.cron.Stop().Done()
		n.initial.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
	n.running = false
	n.log.Info("rent digest stopped")
}

// RunOnce builds and logs a digest.
func (n *Notifier) RunOnce() (d Digest) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("rent digest failed", zap.Any("panic", r))
			n.rec.DigestRun("error")
		}
	}()

	d = BuildDigest(n.src, n.cfg.ExpiryWindow, n.now())

	for _, p := range d.Overdue {
		n.log.Warn("overdue payment",
			zap.String("payment_id", p.ID),
			zap.String("tenant", p.Tenant),
			zap.String("property", p.Property),
			zap.Stringer("amount", p.Amount),
			zap.Int("days_overdue", p.DaysOverdue),
			zap.String("range", string(p.Range)),
		)
	}
	for _, c := range d.Expiring {
		n.log.Info("contract expiring",
			zap.String("contract_id", c.ID),
			zap.String("tenant", c.Tenant),
			zap.String("end_date", c.EndDate),
			zap.Int("days_remaining", c.DaysRemaining),
		)
	}

	n.log.Info("rent digest completed",
		zap.String("date", d.Date),
		zap.Int("overdue", len(d.Overdue)),
		zap.Int("expiring", len(d.Expiring)),
	)
	n.rec.DigestRun("ok")
	return d
}
