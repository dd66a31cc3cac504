package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Cultivation_Go/internal/clock"
	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// DailyResetter rolls cultivation day counters over
type DailyResetter interface {
	ResetDaily(ctx context.Context) (*domain.DailyResetResult, error)
}

// DailyResetWorker runs the daily rollover at local midnight in the configured zone
type DailyResetWorker struct {
	resetter DailyResetter
	location *time.Location
	clock    clock.Clock
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker. loc defaults to UTC and clk to the wall clock.
func NewDailyResetWorker(resetter DailyResetter, loc *time.Location, clk clock.Clock) *DailyResetWorker {
	if loc == nil {
		loc = time.UTC
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &DailyResetWorker{
		resetter: resetter,
		location: loc,
		clock:    clk,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms either a standby timer or the reset timer itself.
// Long waits are split so a suspended host or clock jump is corrected before midnight.
func (w *DailyResetWorker) scheduleNext() {
	log := logger.FromContext(context.Background())
	now := w.clock.Now()
	duration := timeUntilNextReset(now, w.location)

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > standbyThreshold {
		wait := duration - standbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgDailyResetStandby, "next_check_at", now.Add(wait).In(w.location))
		return
	}

	w.timer = time.AfterFunc(duration, w.fire)
	log.Info(LogMsgDailyResetApproach, "next_reset_at", now.Add(duration).In(w.location))
}

func (w *DailyResetWorker) fire() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	// Timers can fire a little early; if midnight is still ahead, re-arm for the remainder
	rem := timeUntilNextReset(w.clock.Now(), w.location)
	if rem > earlyFireTolerance && rem < justResetThreshold {
		w.scheduleNext()
		return
	}

	w.executeReset()
	w.scheduleNext()
}

// executeReset runs one rollover in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyResetStarting)

		result, err := w.resetter.ResetDaily(ctx)
		if err != nil {
			log.Error(LogMsgDailyResetFailed, "error", err)
			return
		}

		log.Info(LogMsgDailyResetCompleted,
			"states_processed", result.StatesProcessed,
			"streaks_extended", result.StreaksExtended)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight reset
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetShutdown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info(LogMsgDailyResetCancelled)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgDailyResetDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgDailyResetTimeout)
		return ctx.Err()
	}
}

// timeUntilNextReset returns the duration from now until the next 00:00 in loc
func timeUntilNextReset(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
