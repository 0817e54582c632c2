package main

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg     *config.Config
	handler slog.Handler
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "playground",
		Short: "Language-interop playground for Go",
		Long: `playground - call a scripted Starlark resource from Go.

The resource defines a Complex record and a Mandelbrot generator. Scripts call
back into Go through a single registered entry point, implemented either by Go
closures or by a Risor program.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config file)")

	root.AddCommand(newDemoCmd(a), newFractalCmd(a), newConfigCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	a.cfg = cfg
	a.handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// overrides copies bound flag values into the loaded configuration, keyed by
// flag name. Only flags set on the command line are applied, so values from
// the config file survive flags left at their defaults.
type overrides map[string]func(*config.Config)

func (o overrides) apply(flags *pflag.FlagSet, cfg *config.Config) error {
	flags.Visit(func(f *pflag.Flag) {
		if set, ok := o[f.Name]; ok {
			set(cfg)
		}
	})
	return cfg.Validate()
}
