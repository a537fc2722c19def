// Package apperrors defines structured application error types for the
// pattern demos, allowing for a clear distinction between error classes
// (configuration, validation, input) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors support errors.Is() and errors.As().
package apperrors
