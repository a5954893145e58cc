package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestUserConfigPurgeArgsKind(t *testing.T) {
	t.Parallel()

	if got := (UserConfigPurgeArgs{}).Kind(); got != "user_config_purge" {
		t.Fatalf("Kind() = %q, want %q", got, "user_config_purge")
	}
}

func TestUserConfigPurgeArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (UserConfigPurgeArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
}

func TestNewUserConfigPurgeWorkerStaleness(t *testing.T) {
	t.Parallel()

	t.Run("defaults to thirty days when non-positive", func(t *testing.T) {
		w := NewUserConfigPurgeWorker(nil, 0)
		if w.staleness != DefaultUserConfigStaleness {
			t.Fatalf("staleness = %s, want %s", w.staleness, DefaultUserConfigStaleness)
		}
	})

	t.Run("uses explicit staleness when provided", func(t *testing.T) {
		want := 14 * 24 * time.Hour
		w := NewUserConfigPurgeWorker(nil, want)
		if w.staleness != want {
			t.Fatalf("staleness = %s, want %s", w.staleness, want)
		}
	})
}

func TestUserConfigPurgeWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	var w *UserConfigPurgeWorker
	err := w.Work(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
	}
}

func TestMaintenanceJobCount(t *testing.T) {
	t.Parallel()

	if got := len(Maintenance()); got != 2 {
		t.Fatalf("Maintenance() returned %d jobs, want 2", got)
	}
}
