package internal

import (
	"context"
	"log/slog"

	starlarkLib "go.starlark.net/starlark"
)

const contextLocal = "context"

// NewThread creates a thread that prints to logger and carries ctx for
// builtins. The thread is cancelled when ctx is done; call the returned stop
// function once the thread is no longer in use.
func NewThread(
	ctx context.Context,
	name string,
	logger *slog.Logger,
) (*starlarkLib.Thread, func() bool) {
	thread := &starlarkLib.Thread{
		Name: name,
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}
	thread.SetLocal(contextLocal, ctx)

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	return thread, stop
}

// ThreadContext returns the context stored by NewThread, or
// context.Background for threads created elsewhere.
func ThreadContext(thread *starlarkLib.Thread) context.Context {
	if thread != nil {
		if ctx, ok := thread.Local(contextLocal).(context.Context); ok {
			return ctx
		}
	}
	return context.Background()
}
