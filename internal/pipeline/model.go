package pipeline

import "io"

// Model is the contract every pipeline variant must satisfy.
// Interface conformance is the compile-time check that a variant supplies
// both required operations; a type missing either does not implement Model
// and cannot reach the runner.
type Model interface {
	// Name returns the registry identifier of the variant.
	Name() string
	// FirstOperation runs the variant's preprocessing before layer 1.
	FirstOperation(w io.Writer)
	// SecondOperation runs the variant's preprocessing before layer 2.
	SecondOperation(w io.Writer)
}

// FirstHook is the optional extension point invoked between layer 1 and the
// second required operation. Variants opt in by implementing it; the runner
// discovers it by type assertion and does nothing when it is absent.
type FirstHook interface {
	FirstHook(w io.Writer)
}

// SecondHook is the optional extension point invoked between layer 2 and
// layer 3. Independent of FirstHook: implementing one never requires or
// affects the other.
type SecondHook interface {
	SecondHook(w io.Writer)
}
