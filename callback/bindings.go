package callback

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/robbyt/go-polybridge/internal/helpers"
)

// Bindings holds the one external entry point. It replaces a process-wide
// named slot: whoever needs to call out receives the Bindings explicitly.
// The slot is written once and is safe for concurrent use.
type Bindings struct {
	mu    sync.RWMutex
	entry EntryPoint

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewBindings creates an empty Bindings. Register must be called before any
// Handle can be constructed from it.
func NewBindings(opts ...Option) (*Bindings, error) {
	b := &Bindings{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("error applying bindings option: %w", err)
		}
	}

	if b.logger != nil {
		b.logHandler = b.logger.Handler()
	} else {
		b.logHandler, b.logger = helpers.SetupLogger(b.logHandler, "callback", "Bindings")
	}
	return b, nil
}

func (b *Bindings) String() string {
	if b == nil {
		return "callback.Bindings{<nil>}"
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return fmt.Sprintf("callback.Bindings{Bound: %t}", b.entry != nil)
}

// Register stores ep as the entry point. The slot can only be filled once.
func (b *Bindings) Register(ep EntryPoint) error {
	if ep == nil {
		return ErrNilEntryPoint
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.entry != nil {
		return ErrAlreadyBound
	}
	b.entry = ep
	b.logger.Debug("external entry point registered", "type", fmt.Sprintf("%T", ep))
	return nil
}

// EntryPoint returns the registered entry point, or ErrMissingBinding when
// nothing has been registered or b is nil.
func (b *Bindings) EntryPoint() (EntryPoint, error) {
	if b == nil {
		return nil, ErrMissingBinding
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.entry == nil {
		return nil, ErrMissingBinding
	}
	return b.entry, nil
}

// Bound reports whether an entry point has been registered.
func (b *Bindings) Bound() bool {
	_, err := b.EntryPoint()
	return err == nil
}

func (b *Bindings) handleLogger() *slog.Logger {
	if b == nil || b.logger == nil {
		_, logger := helpers.SetupLogger(nil, "callback", "Handle")
		return logger
	}
	return b.logger.WithGroup("Handle")
}
