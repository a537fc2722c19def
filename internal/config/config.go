// Package config handles command-line and environment configuration for the
// pattern demos. Priority: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	apperrors "github.com/lpverneck/swe-design/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "SWEDESIGN_"

// ModelAll selects every registered model variant in the pipeline demo.
const ModelAll = "all"

// AppConfig holds the runtime configuration shared by both demos.
// The demos run with pure defaults when invoked without arguments; every
// field here is an optional refinement of how a demo presents its run.
type AppConfig struct {
	// Model selects which pipeline variant to run; ModelAll runs every
	// registered variant in registry order. Ignored by the exporter demo.
	Model string
	// Quiet suppresses banners and dividers, leaving only the step trace.
	Quiet bool
	// Verbose enables debug logging and the metrics footer.
	Verbose bool
	// NoColor disables ANSI colors regardless of terminal support.
	NoColor bool
}

// ParseConfig parses command-line flags into an AppConfig and applies
// environment overrides for flags not explicitly set.
//
// Parameters:
//   - programName: Name used in usage output.
//   - args: Arguments excluding the program name.
//   - errWriter: Destination for usage and error output.
//   - availableModels: Valid values for -model; nil skips model validation
//     (the exporter demo has no model flag semantics).
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableModels []string) (AppConfig, error) {
	cfg := AppConfig{Model: ModelAll}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	if availableModels != nil {
		fs.StringVar(&cfg.Model, "model", ModelAll,
			fmt.Sprintf("Model variant to run (%s or %q)", strings.Join(availableModels, ", "), ModelAll))
	}
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress banners and dividers")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging and the metrics footer")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if availableModels != nil && cfg.Model != ModelAll && !contains(availableModels, cfg.Model) {
		err := apperrors.NewConfigError(
			"unknown model %q (available: %s)", cfg.Model, strings.Join(sortedCopy(availableModels), ", "))
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}

	return cfg, nil
}

// contains reports whether values includes v.
func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// sortedCopy returns a sorted copy of values for stable error messages.
func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
