package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns the handler to hand down to child components and a logger
// for the calling component. A nil handler is replaced by a text handler on stdout,
// grouped under component, and a warning is logged about it.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - component: The owning subsystem (e.g., "starlark", "callback")
//   - groupName: Optional group for the calling type within the component
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(component)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
