package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/async"
)

const DefaultRetentionSchedule = "*/15 * * * *"

// RetentionSweeper periodically prunes every tracked sensor's sample
// history down to its retention window. Workers already prune on write,
// so the sweeper only matters for sensors whose device went quiet.
type RetentionSweeper struct {
	ticker     *time.Ticker
	dispatcher *dispatcher.Dispatcher
	store      dispatcher.SampleStore
	schedule   string
	cronParser cron.Parser
	lastSweep  time.Time
}

var _ async.Worker = &RetentionSweeper{}

func NewRetentionSweeper(
	ticker *time.Ticker,
	dispatcherInstance *dispatcher.Dispatcher,
	store dispatcher.SampleStore,
	schedule string,
) *RetentionSweeper {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	return &RetentionSweeper{
		ticker:     ticker,
		dispatcher: dispatcherInstance,
		store:      store,
		schedule:   schedule,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

func (w *RetentionSweeper) Run(ctx context.Context, done func()) {
	slog.Debug("retention sweeper started", slog.String("schedule", w.schedule))
	defer done()

	for {
		select {
		case <-ctx.Done():
			slog.Info("retention sweeper cancelled")
			return
		case <-w.ticker.C:
			due, err := w.shouldSweep(time.Now())
			if err != nil {
				slog.Error("evaluating retention schedule",
					slog.String("schedule", w.schedule),
					slog.Any("error", err))
				continue
			}
			if !due {
				continue
			}
			w.sweep(context.Background())
		}
	}
}

// shouldSweep reports whether a schedule occurrence falls within the
// last minute that has not been swept yet. Ticks faster than the cron
// granularity would otherwise fire the same occurrence repeatedly.
func (w *RetentionSweeper) shouldSweep(now time.Time) (bool, error) {
	scheduleSpec, err := w.cronParser.Parse(w.schedule)
	if err != nil {
		return false, fmt.Errorf("parsing cron schedule: %w", err)
	}

	nextRun := scheduleSpec.Next(now.Add(-time.Minute))
	if nextRun.After(now) || !nextRun.After(w.lastSweep) {
		return false, nil
	}
	w.lastSweep = nextRun
	return true, nil
}

func (w *RetentionSweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()
	swept := 0

	for _, worker := range w.dispatcher.Workers() {
		for _, state := range worker.SensorsData() {
			cutoff := now.Add(-state.Sensor.RetentionWindow)
			err := w.store.PruneOlderThan(ctx, state.Sensor.ID.String(), cutoff)
			if err != nil {
				slog.Error("pruning sensor history",
					slog.String("sensor_id", state.Sensor.ID.String()),
					slog.Any("error", err))
				continue
			}
			swept++
		}
	}

	slog.Debug("retention sweep completed", slog.Int("sensors", swept))
}

func (w *RetentionSweeper) Shutdown() {
	w.ticker.Stop()
}
