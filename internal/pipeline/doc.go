// Package pipeline implements the fixed inference skeleton demo.
//
// The skeleton is a seven-step sequence whose shape never changes: two
// operations every model variant must supply, three layer passes owned by
// the runner, and two optional hooks a variant may opt into. The required
// operations are expressed as the Model interface, so a variant missing one
// is rejected by the compiler rather than at call time. Hooks are separate
// single-method interfaces discovered by type assertion; a variant that
// implements neither still runs the full skeleton.
package pipeline
