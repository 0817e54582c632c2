package callback

import (
	"fmt"
	"log/slog"
)

// Option configures a Bindings instance.
type Option func(*Bindings) error

// WithLogHandler sets the log handler used by the bindings and the handles built from them.
func WithLogHandler(handler slog.Handler) Option {
	return func(b *Bindings) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		b.logHandler = handler
		b.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger for the bindings and the handles built from them.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bindings) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.logger = logger
		b.logHandler = nil
		return nil
	}
}

// HandleOption configures a single Handle.
type HandleOption func(*handleConfig)

type handleConfig struct {
	collectorTeardown bool
}

// WithCollectorTeardown registers a cleanup with the garbage collector that
// sends the teardown call if the handle becomes unreachable without Close.
// Errors from that call are logged because there is no caller to return them to.
// Explicit Close cancels the cleanup.
func WithCollectorTeardown() HandleOption {
	return func(c *handleConfig) {
		c.collectorTeardown = true
	}
}

// DispatcherOption configures the entry point returned by Dispatcher.
type DispatcherOption func(*dispatcher)

// WithFallback forwards closures the dispatcher cannot call itself to ep.
func WithFallback(ep EntryPoint) DispatcherOption {
	return func(d *dispatcher) {
		d.fallback = ep
	}
}

// WithDispatchLogHandler sets the log handler for the dispatcher.
func WithDispatchLogHandler(handler slog.Handler) DispatcherOption {
	return func(d *dispatcher) {
		d.logHandler = handler
	}
}
