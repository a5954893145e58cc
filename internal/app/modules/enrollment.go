package modules

import (
	"context"

	"github.com/riverqueue/river"

	"ludamus.io/enrolld/internal/api/handlers"
	"ludamus.io/enrolld/internal/jobs"
	"ludamus.io/enrolld/internal/notification"
	"ludamus.io/enrolld/internal/slots"
)

// EnrollmentModule wires the enrollment engine surface: slot resolution
// tuning for the handlers, inbox notification triggers on the shared
// dispatcher, and the maintenance workers.
type EnrollmentModule struct {
	infra    *Infrastructure
	triggers *notification.Triggers
}

// NewEnrollmentModule creates the module and subscribes the notification
// triggers to the domain event dispatcher.
func NewEnrollmentModule(infra *Infrastructure) *EnrollmentModule {
	triggers := notification.NewTriggers(notification.NewInboxSender(infra.EntClient))
	triggers.Register(infra.Dispatcher)

	return &EnrollmentModule{
		infra:    infra,
		triggers: triggers,
	}
}

func (m *EnrollmentModule) Name() string { return "enrollment" }

func (m *EnrollmentModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	cfg := m.infra.Config.Enrollment
	deps.Store = m.infra.Store
	deps.Gateways = m.infra.Gateways
	deps.Pools = m.infra.Pools
	deps.Dispatcher = m.infra.Dispatcher
	deps.ResolverOpts = []slots.Option{
		slots.WithCooldown(cfg.RecheckCooldown),
		slots.WithMaxAPISlots(cfg.MaxAPISlots),
	}
}

func (m *EnrollmentModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	cfg := m.infra.Config.Enrollment
	jobs.RegisterWorkers(workers, m.infra.EntClient, cfg.NotificationRetention, cfg.UserConfigStaleness)
}

func (m *EnrollmentModule) Shutdown(context.Context) error { return nil }
