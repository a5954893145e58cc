package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"ludamus.io/enrolld/ent"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
	"ludamus.io/enrolld/internal/pkg/logger"
)

const (
	// DefaultUserConfigStaleness is how long a gateway-fetched zero-slot
	// row is kept before the purge reclaims it. Positive grants and
	// manually entered rows are never purged.
	DefaultUserConfigStaleness = 30 * 24 * time.Hour
)

// UserConfigPurgeArgs is a periodic maintenance job that removes stale
// gateway-sourced negative cache rows from user_enrollment_configs.
type UserConfigPurgeArgs struct{}

// Kind returns the job kind identifier for the periodic purge.
func (UserConfigPurgeArgs) Kind() string { return "user_config_purge" }

// InsertOpts ensures at most one purge job is enqueued within the same day.
func (UserConfigPurgeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// UserConfigPurgeWorker deletes negative-cache rows whose last gateway
// check is older than the staleness horizon. A purged email is simply
// re-fetched on its next enrollment attempt.
type UserConfigPurgeWorker struct {
	river.WorkerDefaults[UserConfigPurgeArgs]
	entClient *ent.Client
	staleness time.Duration
}

// NewUserConfigPurgeWorker creates a purge worker. Non-positive staleness
// falls back to the 30-day default.
func NewUserConfigPurgeWorker(entClient *ent.Client, staleness time.Duration) *UserConfigPurgeWorker {
	if staleness <= 0 {
		staleness = DefaultUserConfigStaleness
	}
	return &UserConfigPurgeWorker{
		entClient: entClient,
		staleness: staleness,
	}
}

// Work removes stale negative cache rows.
func (w *UserConfigPurgeWorker) Work(ctx context.Context, _ *river.Job[UserConfigPurgeArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("user config purge worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.staleness)
	deleted, err := w.entClient.UserEnrollmentConfig.Delete().
		Where(
			userenrollmentconfig.FetchedFromAPI(true),
			userenrollmentconfig.AllowedSlots(0),
			userenrollmentconfig.LastCheckLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete stale user configs before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("user config purge completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("staleness", w.staleness),
	)
	return nil
}
