package callback

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
)

// Handle forwards calls for one closure to the entry point that was
// registered when the handle was constructed. The entry point is never looked
// up again, so a handle keeps working even if it outlives its Bindings.
type Handle struct {
	state *handleState

	cleanup    runtime.Cleanup
	hasCleanup bool
}

// handleState is kept apart from Handle so the collector cleanup can hold it
// without keeping the Handle itself reachable.
type handleState struct {
	entry   EntryPoint
	closure any
	closed  atomic.Bool
	logger  *slog.Logger
}

// New resolves the entry point from bindings and binds closure to it.
// It fails with ErrMissingBinding while nothing is registered.
func New(bindings *Bindings, closure any, opts ...HandleOption) (*Handle, error) {
	entry, err := bindings.EntryPoint()
	if err != nil {
		return nil, fmt.Errorf("cannot construct callback handle: %w", err)
	}

	cfg := &handleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &Handle{
		state: &handleState{
			entry:   entry,
			closure: closure,
			logger:  bindings.handleLogger(),
		},
	}

	if cfg.collectorTeardown {
		h.cleanup = runtime.AddCleanup(h, collectTeardown, h.state)
		h.hasCleanup = true
	}
	return h, nil
}

func collectTeardown(s *handleState) {
	if err := s.teardown(context.Background()); err != nil {
		s.logger.Error("teardown from collector failed", "error", err)
	}
}

func (h *Handle) String() string {
	return fmt.Sprintf("callback.Handle{Closure: %T, Closed: %t}", h.state.closure, h.Closed())
}

// Closure returns the payload the handle was created with.
func (h *Handle) Closure() any {
	return h.state.closure
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.state.closed.Load()
}

// Invoke forwards (closure, args) to the entry point and returns its result
// and error unmodified.
func (h *Handle) Invoke(ctx context.Context, args Args) (any, error) {
	defer runtime.KeepAlive(h)

	if h.state.closed.Load() {
		return nil, ErrHandleClosed
	}
	return h.state.entry.Callback(ctx, h.state.closure, args)
}

// Close sends the teardown call, a single invocation with nil Args. Only the
// first Close forwards anything; later calls return nil.
func (h *Handle) Close(ctx context.Context) error {
	if h.hasCleanup {
		h.cleanup.Stop()
	}
	return h.state.teardown(ctx)
}

func (s *handleState) teardown(ctx context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if _, err := s.entry.Callback(ctx, s.closure, nil); err != nil {
		return fmt.Errorf("teardown failed: %w", err)
	}
	return nil
}
