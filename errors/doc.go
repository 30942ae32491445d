// Package errors provides the structured error type used by smemlayout.
//
// Errors carry a Phase (where the error occurred) and a Kind (error
// category), plus the path of the offending pool or chunk:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidAlignment).
//		Path("smem", "loadA").
//		Value(3).
//		Detail("alignment must be a positive power of two").
//		Build()
//
// Sentinel values such as ErrInvalidAlignment match any error with the same
// Phase and Kind through errors.Is.
package errors
