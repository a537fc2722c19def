package exporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/lpverneck/swe-design/internal/errors"
	"github.com/lpverneck/swe-design/internal/logging"
	"github.com/lpverneck/swe-design/internal/ui"
)

// Selector prompts the operator for an option label and resolves it to a
// Factory. Invalid input is rejected with a re-prompt; the loop has no
// iteration limit and terminates only on valid input or a read failure.
type Selector struct {
	in  io.Reader
	out io.Writer
	log logging.Logger
}

// SelectorOption configures a Selector during construction.
type SelectorOption func(*Selector)

// WithSelectorLogger sets the structured logger for prompt-loop events.
func WithSelectorLogger(log logging.Logger) SelectorOption {
	return func(s *Selector) { s.log = log }
}

// NewSelector creates a Selector reading from stdin and writing to stdout.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{in: os.Stdin, out: os.Stdout, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetInput sets a custom input reader (useful for testing).
func (s *Selector) SetInput(in io.Reader) {
	s.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (s *Selector) SetOutput(out io.Writer) {
	s.out = out
}

// Choose blocks until the operator enters a valid option label, then returns
// the corresponding factory. Labels match exactly and case-sensitively; any
// other input prints a rejection line and re-prompts. A read failure (EOF on
// a closed stdin included) is returned as an InputError.
func (s *Selector) Choose() (Factory, error) {
	reader := bufio.NewReader(s.in)
	choices := formatChoices(Labels())

	for {
		fmt.Fprintf(s.out, "Choose the exporter type: %s\n", choices)

		line, err := reader.ReadString('\n')
		label := strings.TrimRight(line, "\r\n")

		if factory, ok := ForLabel(label); ok {
			s.log.Debug("factory selected", logging.String("label", label))
			return factory, nil
		}

		if err != nil {
			s.log.Error("prompt read failed", err)
			return nil, apperrors.InputError{Cause: err}
		}

		s.log.Debug("input rejected", logging.String("input", label))
		fmt.Fprintf(s.out, "%sPlease, enter a valid option. %s.%s\n",
			ui.ColorWarning(), choices, ui.ColorReset())
	}
}

// formatChoices renders labels as "(A) or (B)".
func formatChoices(labels []string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = "(" + label + ")"
	}
	return strings.Join(parts, " or ")
}
