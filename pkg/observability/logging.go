package observability

import (
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LogHooks returns a hook set that logs container activity through slog.
// Dispatches log at Debug, published changes at Info, deferred faults at
// Error.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			logger.Debug("action dispatched",
				"type", e.Action.Type,
				"changed", len(e.Changed),
				"deferred", e.Deferred,
				"duration", e.Duration,
			)
		},
		OnStateChange: func(e *domain.ChangeEvent) {
			logger.Info("state published",
				"type", e.Action.Type,
				"slices", e.Changed,
				"version", e.Version,
			)
		},
		OnDeferredError: func(e *domain.DeferredErrorEvent) {
			logger.Error("deferred dispatch failed",
				"type", e.Action.Type,
				"err", e.Err,
			)
		},
	}
}
