package pipeline

import (
	"fmt"
	"io"

	"github.com/lpverneck/swe-design/internal/logging"
	"github.com/lpverneck/swe-design/internal/metrics"
)

// Step names used for logging and metrics labels.
const (
	StepFirstOperation  = "first_operation"
	StepFirstLayer      = "layer_1"
	StepFirstHook       = "first_hook"
	StepSecondOperation = "second_operation"
	StepSecondLayer     = "layer_2"
	StepSecondHook      = "second_hook"
	StepThirdLayer      = "layer_3"
)

// Runner owns the immutable skeleton sequence. The three layer passes are
// methods of the runner and cannot be overridden by variants. A Runner holds
// no per-execution state, so repeated Execute calls on the same variant
// produce identical, independent traces.
type Runner struct {
	out     io.Writer
	log     logging.Logger
	metrics *metrics.StepMetrics
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger used for step-level debug logging.
func WithLogger(log logging.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithMetrics sets the metrics sink that counts step executions.
func WithMetrics(m *metrics.StepMetrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner creates a Runner writing its trace to out.
func NewRunner(out io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{out: out, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute runs the skeleton against the given variant. The order is fixed:
// first operation, layer 1, first hook, second operation, layer 2, second
// hook, layer 3. Hooks run only when the variant implements them; skipping
// a hook never changes the position of any other step. Execute cannot fail
// once a valid Model exists.
func (r *Runner) Execute(m Model) {
	r.step(m, StepFirstOperation, func() { m.FirstOperation(r.out) })
	r.step(m, StepFirstLayer, r.firstLayer)
	if h, ok := m.(FirstHook); ok {
		r.step(m, StepFirstHook, func() { h.FirstHook(r.out) })
	}
	r.step(m, StepSecondOperation, func() { m.SecondOperation(r.out) })
	r.step(m, StepSecondLayer, r.secondLayer)
	if h, ok := m.(SecondHook); ok {
		r.step(m, StepSecondHook, func() { h.SecondHook(r.out) })
	}
	r.step(m, StepThirdLayer, r.thirdLayer)
}

// step runs a single skeleton step with logging and metrics bookkeeping.
func (r *Runner) step(m Model, name string, fn func()) {
	r.log.Debug("executing step",
		logging.String("model", m.Name()),
		logging.String("step", name))
	if r.metrics != nil {
		r.metrics.ObserveStep(m.Name(), name)
	}
	fn()
}

func (r *Runner) firstLayer() {
	fmt.Fprintln(r.out, "Passed through layer 1 ...")
}

func (r *Runner) secondLayer() {
	fmt.Fprintln(r.out, "Passed through layer 2 ...")
}

func (r *Runner) thirdLayer() {
	fmt.Fprintln(r.out, "Passed through layer 3 ...")
}
