package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where the error occurred
type Phase string

const (
	PhaseConfig Phase = "config" // plan construction
	PhaseQuery  Phase = "query"  // offset and size lookups
	PhaseLoad   Phase = "load"   // reading pool descriptions
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidAlignment Kind = "invalid_alignment"
	KindInvalidSize      Kind = "invalid_size"
	KindInvalidAlias     Kind = "invalid_alias"
	KindOverflow         Kind = "overflow"
	KindOutOfRange       Kind = "out_of_range"
	KindDuplicateName    Kind = "duplicate_name"
	KindEmptyName        Kind = "empty_name"
	KindUnknownName      Kind = "unknown_name"
	KindInvalidData      Kind = "invalid_data"
)

// Sentinels for errors.Is. Only Phase and Kind take part in the match.
var (
	ErrInvalidAlignment = &Error{Phase: PhaseConfig, Kind: KindInvalidAlignment}
	ErrInvalidSize      = &Error{Phase: PhaseConfig, Kind: KindInvalidSize}
	ErrInvalidAlias     = &Error{Phase: PhaseConfig, Kind: KindInvalidAlias}
	ErrOverflow         = &Error{Phase: PhaseConfig, Kind: KindOverflow}
	ErrDuplicateName    = &Error{Phase: PhaseConfig, Kind: KindDuplicateName}
	ErrEmptyName        = &Error{Phase: PhaseConfig, Kind: KindEmptyName}
	ErrIndexOutOfRange  = &Error{Phase: PhaseQuery, Kind: KindOutOfRange}
	ErrUnknownName      = &Error{Phase: PhaseQuery, Kind: KindUnknownName}
	ErrInvalidData      = &Error{Phase: PhaseLoad, Kind: KindInvalidData}
)

// Error is the structured error type used throughout smemlayout
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
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
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Path sets the pool/chunk path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// InvalidAlignment creates an error for an alignment that is not a positive
// power of two
func InvalidAlignment(path []string, alignment int) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidAlignment,
		Path:   path,
		Detail: fmt.Sprintf("alignment %d is not a positive power of two", alignment),
		Value:  alignment,
	}
}

// OutOfRange creates an index out of range error
func OutOfRange(path []string, index, length int) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
		Value:  index,
	}
}

// UnknownName creates an error for a pool or chunk name that is not declared
func UnknownName(path []string, name string) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindUnknownName,
		Path:   path,
		Detail: fmt.Sprintf("unknown name %q", name),
		Value:  name,
	}
}

// DuplicateName creates an error for a name declared twice
func DuplicateName(path []string, name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindDuplicateName,
		Path:   path,
		Detail: fmt.Sprintf("name %q declared more than once", name),
		Value:  name,
	}
}

// InvalidData creates an invalid data error
func InvalidData(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPrefix returns err with prefix prepended to its path. Errors that are
// not *Error are returned unchanged.
func WithPrefix(err error, prefix ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Path = make([]string, 0, len(prefix)+len(e.Path))
	cp.Path = append(cp.Path, prefix...)
	cp.Path = append(cp.Path, e.Path...)
	return &cp
}

// IsPhase reports whether err is an *Error from the given phase
func IsPhase(err error, phase Phase) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Phase == phase
	}
	return false
}
