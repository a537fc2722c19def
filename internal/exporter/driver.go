package exporter

import (
	"io"

	"github.com/lpverneck/swe-design/internal/logging"
	"github.com/lpverneck/swe-design/internal/metrics"
)

// Fixed example arguments used by the demo driver.
const (
	ExampleImage  = ".jpeg"
	ExampleAudio  = ".mp3"
	ExampleFolder = "Downloads/"
)

// Driver obtains one product per category from a factory and runs them
// through the fixed demo sequence.
type Driver struct {
	out     io.Writer
	log     logging.Logger
	metrics *metrics.ExportMetrics
}

// DriverOption configures a Driver during construction.
type DriverOption func(*Driver)

// WithDriverLogger sets the structured logger for driver events.
func WithDriverLogger(log logging.Logger) DriverOption {
	return func(d *Driver) { d.log = log }
}

// WithDriverMetrics sets the metrics sink that counts product calls.
func WithDriverMetrics(m *metrics.ExportMetrics) DriverOption {
	return func(d *Driver) { d.metrics = m }
}

// NewDriver creates a Driver writing its trace to out.
func NewDriver(out io.Writer, opts ...DriverOption) *Driver {
	d := &Driver{out: out, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the demo sequence against the selected factory: both products
// are pre-processed in category order (image before audio), then both are
// exported in the same order, with the fixed example arguments.
func (d *Driver) Run(factory Factory) {
	d.log.Debug("running export sequence", logging.String("option", factory.Label()))

	image := factory.ImageExporter()
	audio := factory.AudioExporter()

	d.observe("image", "preprocess")
	image.PreProcess(d.out, ExampleImage)
	d.observe("audio", "preprocess")
	audio.PreProcess(d.out, ExampleAudio)

	d.observe("image", "export")
	image.Export(d.out, ExampleFolder)
	d.observe("audio", "export")
	audio.Export(d.out, ExampleFolder)
}

// observe counts one product call when metrics are enabled.
func (d *Driver) observe(category, operation string) {
	if d.metrics != nil {
		d.metrics.ObserveCall(category, operation)
	}
}
