package pipeline

import (
	"fmt"
	"io"
)

// ModelV1 is the baseline variant. It supplies the two required operations
// and leaves both hooks unimplemented.
type ModelV1 struct{}

var _ Model = ModelV1{}

// Name returns the registry identifier.
func (ModelV1) Name() string { return "v1" }

// FirstOperation runs ModelV1's preprocessing before layer 1.
func (ModelV1) FirstOperation(w io.Writer) {
	fmt.Fprintln(w, "ModelV1 preprocessing before layer 1 ...")
}

// SecondOperation runs ModelV1's preprocessing before layer 2.
func (ModelV1) SecondOperation(w io.Writer) {
	fmt.Fprintln(w, "ModelV1 preprocessing before layer 2 ...")
}

// ModelV2 overrides only a fraction of the extension points: both required
// operations plus the first hook. The second hook stays at its no-op default.
type ModelV2 struct{}

var (
	_ Model     = ModelV2{}
	_ FirstHook = ModelV2{}
)

// Name returns the registry identifier.
func (ModelV2) Name() string { return "v2" }

// FirstOperation runs ModelV2's preprocessing before layer 1.
func (ModelV2) FirstOperation(w io.Writer) {
	fmt.Fprintln(w, "ModelV2 preprocessing before layer 1 ...")
}

// SecondOperation runs ModelV2's preprocessing before layer 2.
func (ModelV2) SecondOperation(w io.Writer) {
	fmt.Fprintln(w, "ModelV2 preprocessing before layer 2 ...")
}

// FirstHook announces itself between layer 1 and the second operation.
func (ModelV2) FirstHook(w io.Writer) {
	fmt.Fprintln(w, "Hook 1 triggered !")
}
