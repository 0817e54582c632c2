package main

import (
	"context"
	"fmt"
	"io"

	"github.com/robbyt/go-polybridge"
	"github.com/robbyt/go-polybridge/bridge"
	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/internal/config"
	"github.com/robbyt/go-polybridge/pair"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var entry, classVar string
	set := overrides{
		"entry":    func(c *config.Config) { c.Demo.Entry = entry },
		"classvar": func(c *config.Config) { c.Resource.ClassVar = classVar },
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted Complex resource end to end",
		Long: `Load the scripted Complex resource, call each of its methods through the
typed bridge, pass a closure into the script and compare the results with the
Go-native pair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := set.apply(cmd.Flags(), a.cfg); err != nil {
				return err
			}
			return a.runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&entry, "entry", config.Default().Demo.Entry, "Callback entry point: go, risor")
	cmd.Flags().StringVar(&classVar, "classvar", "", "Override the resource's class name")
	return cmd
}

// demoEntry returns the entry point and a closure payload it understands.
func (a *app) demoEntry(p *pair.NumericPair) (callback.EntryPoint, any, error) {
	switch a.cfg.Demo.Entry {
	case config.EntryRisor:
		ep, err := polybridge.NewRisorEntryPoint(a.handler)
		if err != nil {
			return nil, nil, err
		}
		closure := map[string]any{pair.KeyReal: p.Real, pair.KeyImag: p.Imag}
		return ep, closure, nil
	default:
		real, imag := p.Real, p.Imag
		closure := callback.Closure(func(_ context.Context, args callback.Args) (any, error) {
			return pair.New(real, imag+float64(len(args))), nil
		})
		return callback.Dispatcher(callback.WithDispatchLogHandler(a.handler)), closure, nil
	}
}

func (a *app) runDemo(ctx context.Context, out io.Writer) error {
	native := pair.New(a.cfg.Demo.Real, a.cfg.Demo.Imag)

	entry, closure, err := a.demoEntry(native)
	if err != nil {
		return err
	}
	bindings, err := polybridge.NewBindings(entry, a.handler)
	if err != nil {
		return err
	}

	var staticData map[string]any
	if a.cfg.Resource.ClassVar != "" {
		staticData = map[string]any{"classvar": a.cfg.Resource.ClassVar}
	}
	module, err := polybridge.LoadResource(ctx, bindings, staticData, a.handler)
	if err != nil {
		return err
	}

	classVar, err := bridge.ClassVar(module)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "entry point:    %s\n", a.cfg.Demo.Entry)
	fmt.Fprintf(out, "classvar:       %s\n", classVar)

	c, err := bridge.NewComplex(ctx, module, native.Real, native.Imag)
	if err != nil {
		return err
	}
	other, err := bridge.NewComplexFactory(ctx, module, 0.5, 0.5)
	if err != nil {
		return err
	}
	if err := c.Add(ctx, other); err != nil {
		return err
	}
	native.Accumulate(pair.New(0.5, 0.5))

	s, err := c.ToString(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "toString:       %s\n", s)
	fmt.Fprintf(out, "native:         %s\n", native)

	arr, err := c.ToArray(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "toArray:        %v\n", arr)

	dict, err := c.ToDictionary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "toDictionary:   %v\n", dict)

	echo, err := c.EchoArray(ctx, []any{"a", 1.5, true})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "echoArray:      %v\n", echo)

	scripted, err := c.CallMe(ctx, closure, "hello")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "callme:         %v\n", scripted)

	direct, err := native.InvokeExternalCallback(ctx, bindings, closure, "hello")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "native callme:  %v\n", direct)
	return nil
}
