package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	apperrors "github.com/lpverneck/swe-design/internal/errors"
)

var testModels = []string{"v1", "v2"}

// TestParseConfig tests flag parsing for both demo configurations.
func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		models  []string
		want    AppConfig
		wantErr bool
	}{
		{
			name:   "defaults with no arguments",
			args:   nil,
			models: testModels,
			want:   AppConfig{Model: "all"},
		},
		{
			name:   "explicit model",
			args:   []string{"-model", "v2"},
			models: testModels,
			want:   AppConfig{Model: "v2"},
		},
		{
			name:   "quiet shorthand",
			args:   []string{"-q"},
			models: testModels,
			want:   AppConfig{Model: "all", Quiet: true},
		},
		{
			name:   "verbose and no-color",
			args:   []string{"-v", "-no-color"},
			models: testModels,
			want:   AppConfig{Model: "all", Verbose: true, NoColor: true},
		},
		{
			name:   "no model flag without model list",
			args:   nil,
			models: nil,
			want:   AppConfig{Model: "all"},
		},
		{
			name:    "unknown model rejected",
			args:    []string{"-model", "v9"},
			models:  testModels,
			wantErr: true,
		},
		{
			name:    "positional argument rejected",
			args:    []string{"extra"},
			models:  testModels,
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"-bogus"},
			models:  testModels,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			got, err := ParseConfig("demo", tt.args, &errBuf, tt.models)

			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseConfig should have failed")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseConfig = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestParseConfig_Help verifies -h surfaces flag.ErrHelp for the caller.
func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("demo", []string{"-h"}, &errBuf, testModels)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
}

// TestParseConfig_UnknownModelError verifies the error type and message.
func TestParseConfig_UnknownModelError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("demo", []string{"-model", "v9"}, &errBuf, testModels)

	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be a ConfigError, got %T: %v", err, err)
	}
}

// TestEnvOverrides tests the CLI > env > default priority chain.
func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag absent", func(t *testing.T) {
		t.Setenv("SWEDESIGN_MODEL", "v1")
		t.Setenv("SWEDESIGN_VERBOSE", "1")

		var errBuf bytes.Buffer
		got, err := ParseConfig("demo", nil, &errBuf, testModels)
		if err != nil {
			t.Fatalf("ParseConfig failed: %v", err)
		}
		if got.Model != "v1" {
			t.Errorf("Model = %q, want env override %q", got.Model, "v1")
		}
		if !got.Verbose {
			t.Error("Verbose should be enabled by SWEDESIGN_VERBOSE=1")
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv("SWEDESIGN_MODEL", "v1")

		var errBuf bytes.Buffer
		got, err := ParseConfig("demo", []string{"-model", "v2"}, &errBuf, testModels)
		if err != nil {
			t.Fatalf("ParseConfig failed: %v", err)
		}
		if got.Model != "v2" {
			t.Errorf("Model = %q, explicit flag should win over env", got.Model)
		}
	})

	t.Run("env model is validated", func(t *testing.T) {
		t.Setenv("SWEDESIGN_MODEL", "v9")

		var errBuf bytes.Buffer
		_, err := ParseConfig("demo", nil, &errBuf, testModels)
		if err == nil {
			t.Error("invalid env model should be rejected")
		}
	})

	t.Run("short flag blocks env override of alias", func(t *testing.T) {
		t.Setenv("SWEDESIGN_QUIET", "true")

		var errBuf bytes.Buffer
		got, err := ParseConfig("demo", []string{"-q"}, &errBuf, testModels)
		if err != nil {
			t.Fatalf("ParseConfig failed: %v", err)
		}
		if !got.Quiet {
			t.Error("Quiet should be set by the -q flag")
		}
	})
}

// TestParseBoolEnv tests boolean environment value parsing.
func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
				t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
			}
		})
	}
}
