package exporter

import (
	"fmt"
	"io"
)

// ImageExporter is the image product category: pre-process an image, then
// export the pre-processed data to a folder.
type ImageExporter interface {
	// PreProcess prepares the image data before export.
	PreProcess(w io.Writer, image string)
	// Export writes the pre-processed data to the destination folder.
	Export(w io.Writer, folder string)
}

// AudioExporter is the audio product category, mirroring ImageExporter.
type AudioExporter interface {
	// PreProcess prepares the audio data before export.
	PreProcess(w io.Writer, audio string)
	// Export writes the pre-processed data to the destination folder.
	Export(w io.Writer, folder string)
}

// GrayScaleImage converts image data to gray scale before export.
type GrayScaleImage struct{}

var _ ImageExporter = GrayScaleImage{}

// PreProcess prepares the image for gray scale conversion.
func (GrayScaleImage) PreProcess(w io.Writer, _ string) {
	fmt.Fprintln(w, "Pre-process image for gray scale.")
}

// Export writes the gray scale image data to folder.
func (GrayScaleImage) Export(w io.Writer, folder string) {
	fmt.Fprintf(w, "Export image data in gray scale to %s\n", folder)
}

// NoiseReductionImage removes noise from image data before export.
type NoiseReductionImage struct{}

var _ ImageExporter = NoiseReductionImage{}

// PreProcess prepares the image for noise reduction.
func (NoiseReductionImage) PreProcess(w io.Writer, _ string) {
	fmt.Fprintln(w, "Pre-process image for noise reduction.")
}

// Export writes the denoised image data to folder.
func (NoiseReductionImage) Export(w io.Writer, folder string) {
	fmt.Fprintf(w, "Export image data with less noise to %s\n", folder)
}

// ResamplingAudio resamples audio data before export.
type ResamplingAudio struct{}

var _ AudioExporter = ResamplingAudio{}

// PreProcess prepares the audio for resampling.
func (ResamplingAudio) PreProcess(w io.Writer, _ string) {
	fmt.Fprintln(w, "Pre-process audio for resampling.")
}

// Export writes the resampled audio data to folder.
func (ResamplingAudio) Export(w io.Writer, folder string) {
	fmt.Fprintf(w, "Export audio data with resampling to %s\n", folder)
}

// FilterAudio applies a filter to audio data before export.
type FilterAudio struct{}

var _ AudioExporter = FilterAudio{}

// PreProcess prepares the audio for filtering.
func (FilterAudio) PreProcess(w io.Writer, _ string) {
	fmt.Fprintln(w, "Pre-process audio for filtering.")
}

// Export writes the filtered audio data to folder.
func (FilterAudio) Export(w io.Writer, folder string) {
	fmt.Fprintf(w, "Export filtered audio data to %s\n", folder)
}
