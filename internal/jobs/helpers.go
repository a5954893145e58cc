// Package jobs defines River Queue job types for async processing.
package jobs

import (
	"time"

	"github.com/riverqueue/river"

	"ludamus.io/enrolld/ent"
)

// Maintenance builds the periodic maintenance jobs the service schedules at
// startup: inbox retention and negative-cache purging.
func Maintenance() []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return UserConfigPurgeArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// RegisterWorkers attaches this package's workers to a River workers
// registry.
func RegisterWorkers(workers *river.Workers, entClient *ent.Client, notificationRetention, userConfigStaleness time.Duration) {
	river.AddWorker(workers, NewNotificationCleanupWorker(entClient, notificationRetention))
	river.AddWorker(workers, NewUserConfigPurgeWorker(entClient, userConfigStaleness))
}
