package callback

import (
	"context"
	"sync"
)

type recordedCall struct {
	closure any
	args    Args
}

// recorder is an entry point that remembers every call it receives.
type recorder struct {
	mu     sync.Mutex
	calls  []recordedCall
	result any
	err    error
}

func (r *recorder) Callback(_ context.Context, closure any, args Args) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{closure: closure, args: args})
	return r.result, r.err
}

func (r *recorder) teardowns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.args.IsTeardown() {
			n++
		}
	}
	return n
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type releasable struct {
	released int
	err      error
}

func (r *releasable) Release() error {
	r.released++
	return r.err
}

type adder struct {
	base int
}

func (a adder) Call(_ context.Context, args Args) (any, error) {
	total := a.base
	for _, arg := range args {
		total += arg.(int)
	}
	return total, nil
}
