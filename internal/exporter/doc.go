// Package exporter implements the media exporter family demo.
//
// Two product categories exist, image and audio exporters, each with two
// interchangeable implementations. A Factory bundles one implementation per
// category into a fixed pairing; the operator picks a pairing through a
// blocking prompt keyed by a closed label set, and the driver then runs the
// selected products through a fixed preprocess/export sequence.
package exporter
