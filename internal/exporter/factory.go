package exporter

import "sort"

// Factory bundles one exporter per product category into a fixed pairing.
// A selected factory is immutable: a run uses exactly one pairing end to end.
type Factory interface {
	// Label returns the option label this factory is registered under.
	Label() string
	// ImageExporter returns the image exporter of this pairing.
	ImageExporter() ImageExporter
	// AudioExporter returns the audio exporter of this pairing.
	AudioExporter() AudioExporter
}

// OptionAFactory pairs gray scale image export with resampling audio export.
type OptionAFactory struct{}

var _ Factory = OptionAFactory{}

// Label returns "A".
func (OptionAFactory) Label() string { return "A" }

// ImageExporter returns a gray scale image exporter.
func (OptionAFactory) ImageExporter() ImageExporter { return GrayScaleImage{} }

// AudioExporter returns a resampling audio exporter.
func (OptionAFactory) AudioExporter() AudioExporter { return ResamplingAudio{} }

// OptionBFactory pairs noise reduction image export with filtered audio export.
type OptionBFactory struct{}

var _ Factory = OptionBFactory{}

// Label returns "B".
func (OptionBFactory) Label() string { return "B" }

// ImageExporter returns a noise reduction image exporter.
func (OptionBFactory) ImageExporter() ImageExporter { return NoiseReductionImage{} }

// AudioExporter returns a filter audio exporter.
func (OptionBFactory) AudioExporter() AudioExporter { return FilterAudio{} }

// factories is the closed label-to-constructor table. The label set is small
// and fixed, so a static table replaces open-ended runtime registration.
var factories = map[string]func() Factory{
	"A": func() Factory { return OptionAFactory{} },
	"B": func() Factory { return OptionBFactory{} },
}

// ForLabel returns the factory registered under label. Matching is exact and
// case-sensitive.
func ForLabel(label string) (Factory, bool) {
	ctor, ok := factories[label]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Labels returns the valid option labels in sorted order.
func Labels() []string {
	labels := make([]string, 0, len(factories))
	for label := range factories {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
