package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // type name lookup in a metadata source
	PhaseLayout  Phase = "layout"  // layout tree computation
	PhaseRender  Phase = "render"  // text rendering
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindRecursionLimit  Kind = "recursion_limit"
	KindInvalidMetadata Kind = "invalid_metadata"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, " -> "))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the chain of type names leading to the error
func (b *Builder) Path(elems ...string) *Builder {
	b.err.Path = elems
	return b
}

// TypeName sets the offending type name
func (b *Builder) TypeName(name string) *Builder {
	b.err.TypeName = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates an error for a type name absent from the metadata source
func NotFound(phase Phase, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNotFound,
		TypeName: typeName,
		Detail:   "type not found",
	}
}

// RecursionLimit creates an error for the defensive recursion-depth guard,
// carrying the chain of type names that triggered it
func RecursionLimit(phase Phase, chain []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRecursionLimit,
		Path:   chain,
		Detail: "recursion depth limit exceeded",
	}
}

// InvalidMetadata creates an error for malformed type metadata
func InvalidMetadata(phase Phase, typeName, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidMetadata,
		TypeName: typeName,
		Detail:   detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an error for a malformed request
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
