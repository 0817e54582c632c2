package data

import "context"

// Getter returns the map a script sees as ctx.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter stores per-call data on a context, where a later GetData on the
// same provider finds it. A compiled script can then run many times with
// different data.
type Setter interface {
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider supplies a script's ctx data.
type Provider interface {
	Getter
	Setter
}
