// Package errors provides structured error types for the typelayout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the chain of type names
// that led to the failure, the offending type name, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindNotFound).
//		TypeName("no::such::Type").
//		Detail("type not present in debug info").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseResolve, "no::such::Type")
//	err := errors.RecursionLimit(errors.PhaseLayout, chain)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
