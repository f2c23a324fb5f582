package dataset

import (
	"github.com/robfig/cron/v3"

	"github.com/mf-advisor/advisor_service/pkg/logger"
	"github.com/mf-advisor/advisor_service/pkg/metrics"
)

// Reloader rebuilds the snapshot on a cron schedule and swaps it into the
// store. A failed reload keeps the previous snapshot serving.
type Reloader struct {
	loader   *Loader
	store    *Store
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

// NewReloader creates a reloader; schedule is a cron expression
func NewReloader(loader *Loader, store *Store, schedule string, log *logger.Logger) *Reloader {
	return &Reloader{
		loader:   loader,
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   log,
	}
}

// Start schedules reloads. No-op when the schedule is empty.
func (r *Reloader) Start() error {
	if r.schedule == "" {
		r.logger.Info("Dataset reload schedule not configured, snapshots are load-once")
		return nil
	}

	if _, err := r.cron.AddFunc(r.schedule, r.reload); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Infow("Dataset reloader started", "schedule", r.schedule)
	return nil
}

// Stop halts scheduled reloads
func (r *Reloader) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reloader) reload() {
	snap, err := r.loader.Load()
	if err != nil {
		metrics.SnapshotReloadsTotal.WithLabelValues("error").Inc()
		r.logger.WithError(err).Error("Dataset reload failed, keeping previous snapshot")
		return
	}

	r.store.Swap(snap)
	metrics.SnapshotReloadsTotal.WithLabelValues("success").Inc()
	r.logger.Infow("Dataset snapshot swapped",
		"funds", snap.FundCount(),
		"nav_schemes", snap.NavSchemeCount(),
	)
}
