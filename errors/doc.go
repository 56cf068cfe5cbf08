// Package errors provides structured error types for the xutil library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: field path, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindBadFormat).
//		Path("property", "WM_CLASS").
//		Detail("format %d, want 8", format).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShortRecord(errors.PhaseReply, "property reply", got, 32)
//	err := errors.BadDisplay(display)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
