// Package observability provides ready-made lifecycle hook sets: Prometheus
// metrics and slog structured logging. Both attach to a store via
// arbor.WithLifecycleHooks and never touch dispatch semantics.
package observability
