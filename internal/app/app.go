// Package app wires configuration, logging, and the demo components into
// runnable applications with OS exit-code semantics.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lpverneck/swe-design/internal/config"
	apperrors "github.com/lpverneck/swe-design/internal/errors"
	"github.com/lpverneck/swe-design/internal/exporter"
	"github.com/lpverneck/swe-design/internal/logging"
	"github.com/lpverneck/swe-design/internal/metrics"
	"github.com/lpverneck/swe-design/internal/pipeline"
	"github.com/lpverneck/swe-design/internal/ui"
)

// dividerWidth is the width of the separator printed between variant runs.
const dividerWidth = 50

// PipelineApp is the skeleton-runner demo application.
type PipelineApp struct {
	Config    config.AppConfig
	Registry  *pipeline.Registry
	ErrWriter io.Writer
}

// PipelineOption configures a PipelineApp during construction.
type PipelineOption func(*PipelineApp)

// WithRegistry sets a custom model registry for the application.
func WithRegistry(r *pipeline.Registry) PipelineOption {
	return func(a *PipelineApp) { a.Registry = r }
}

// NewPipelineApp creates the pipeline demo by parsing command-line arguments.
func NewPipelineApp(args []string, errWriter io.Writer, opts ...PipelineOption) (*PipelineApp, error) {
	a := &PipelineApp{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(a)
	}
	if a.Registry == nil {
		a.Registry = pipeline.NewDefaultRegistry()
	}

	programName := "pipeline"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, a.Registry.List())
	if err != nil {
		return nil, err
	}

	a.Config = cfg
	return a, nil
}

// Run executes the demo: every selected variant is pushed through one shared
// runner, in registry order, separated by a divider line.
func (a *PipelineApp) Run(ctx context.Context, out io.Writer) int {
	log := initRuntime(a.Config, "pipeline")

	models, err := pipeline.ModelsToRun(a.Config.Model, a.Registry)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	stepMetrics := metrics.NewStepMetrics()
	runner := pipeline.NewRunner(out,
		pipeline.WithLogger(log),
		pipeline.WithMetrics(stepMetrics))

	if !a.Config.Quiet {
		fmt.Fprintln(out, ui.RenderBanner("Algorithm Skeleton Runner"))
		fmt.Fprintln(out)
	}

	for i, m := range models {
		if ctx.Err() != nil {
			log.Error("run canceled", ctx.Err())
			return apperrors.ExitErrorCanceled
		}
		if i > 0 && !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s\n\n", divider())
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "The client working with the %s%s%s variant:\n\n",
				ui.ColorPrimary(), m.Name(), ui.ColorReset())
		}
		runner.Execute(m)
	}

	if a.Config.Verbose {
		writeFooter(out, stepMetrics.WriteSummary)
	}
	return apperrors.ExitSuccess
}

// ExporterApp is the family-selector demo application.
type ExporterApp struct {
	Config    config.AppConfig
	In        io.Reader
	ErrWriter io.Writer
}

// ExporterOption configures an ExporterApp during construction.
type ExporterOption func(*ExporterApp)

// WithInput sets a custom input reader for the selector prompt.
func WithInput(in io.Reader) ExporterOption {
	return func(a *ExporterApp) { a.In = in }
}

// NewExporterApp creates the exporter demo by parsing command-line arguments.
func NewExporterApp(args []string, errWriter io.Writer, opts ...ExporterOption) (*ExporterApp, error) {
	a := &ExporterApp{In: os.Stdin, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(a)
	}

	programName := "exporter"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, nil)
	if err != nil {
		return nil, err
	}

	a.Config = cfg
	return a, nil
}

// Run executes the demo: block on the selector prompt, then push the chosen
// family through the driver.
func (a *ExporterApp) Run(ctx context.Context, out io.Writer) int {
	log := initRuntime(a.Config, "exporter")

	if !a.Config.Quiet {
		fmt.Fprintln(out, ui.RenderBanner("Product Family Selector"))
		fmt.Fprintln(out)
	}

	selector := exporter.NewSelector(exporter.WithSelectorLogger(log))
	selector.SetInput(a.In)
	selector.SetOutput(out)

	factory, err := selector.Choose()
	if err != nil {
		if apperrors.IsContextError(err) || errors.Is(ctx.Err(), context.Canceled) {
			return apperrors.ExitErrorCanceled
		}
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	exportMetrics := metrics.NewExportMetrics()
	driver := exporter.NewDriver(out,
		exporter.WithDriverLogger(log),
		exporter.WithDriverMetrics(exportMetrics))
	driver.Run(factory)

	if a.Config.Verbose {
		writeFooter(out, exportMetrics.WriteSummary)
	}
	return apperrors.ExitSuccess
}

// initRuntime applies global logging level and theme from the configuration
// and returns the demo's logger.
func initRuntime(cfg config.AppConfig, component string) logging.Logger {
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(cfg.NoColor)

	if cfg.Quiet {
		return logging.NewNopLogger()
	}
	return logging.NewLogger(os.Stderr, component)
}

// writeFooter renders the verbose metrics footer with a memory snapshot.
func writeFooter(out io.Writer, summary func(io.Writer) error) {
	fmt.Fprintf(out, "\n%s--- Metrics ---%s\n", ui.ColorSecondary(), ui.ColorReset())
	if err := summary(out); err != nil {
		fmt.Fprintf(out, "metrics unavailable: %v\n", err)
	}
	fmt.Fprintln(out, metrics.ReadMemory().String())
}

// divider returns the separator line between variant runs.
func divider() string {
	return strings.Repeat("=", dividerWidth)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps a construction error to its process exit code:
// configuration errors exit with ExitErrorConfig, everything else with
// ExitErrorGeneric.
func ExitCodeForError(err error) int {
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
