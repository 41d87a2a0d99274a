package icx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the fixed set of structural/IO failures a pipeline stage
// can report. The CLI maps each Kind to a fixed human-readable message.
type Kind int

const (
	// MissingPath means a required file path is empty.
	MissingPath Kind = iota
	// OpenFailure means the filesystem refused to open a path.
	OpenFailure
	// AllocationFailure means the image buffers could not be allocated.
	AllocationFailure
	// NotABitmap means the signature bytes did not match 0x4D42.
	NotABitmap
	// CreateFailure means the output file could not be created.
	CreateFailure
	// MissingImage means a pipeline stage was invoked with no image descriptor.
	MissingImage
)

func (k Kind) String() string {
	switch k {
	case MissingPath:
		return "MissingPath"
	case OpenFailure:
		return "OpenFailure"
	case AllocationFailure:
		return "AllocationFailure"
	case NotABitmap:
		return "NotABitmap"
	case CreateFailure:
		return "CreateFailure"
	case MissingImage:
		return "MissingImage"
	}
	return "UnknownKind"
}

// Message is the fixed human-readable message the CLI prints for a Kind.
func (k Kind) Message() string {
	switch k {
	case MissingPath:
		return "type a file name"
	case OpenFailure:
		return "some error occurred opening the file"
	case AllocationFailure:
		return "was not possible to allocate memory"
	case NotABitmap:
		return "the file is not a bmp file"
	case CreateFailure:
		return "was not possible to create the output file"
	case MissingImage:
		return "no image is available for this operation"
	}
	return "unknown error"
}

// Error is the error type returned by every stage of the pipeline. It
// carries a stable Kind for the CLI's message table and an optional wrapped
// cause, preserved with github.com/pkg/errors so %+v keeps a stack trace
// back to the originating stage.
type Error struct {
	Kind  Kind
	Stage string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind.Message(), e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Kind.Message())
}

// Unwrap lets errors.Is / errors.As reach the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter so %+v prints the wrapped stack trace
// produced by github.com/pkg/errors, while %v/%s stay one line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+') && e.cause != nil:
		fmt.Fprintf(s, "%s: %s:%+v", e.Stage, e.Kind.Message(), e.cause)
	default:
		fmt.Fprint(s, e.Error())
	}
}

// NewError constructs an *Error for kind, wrapping cause (if any) with
// github.com/pkg/errors so a stack trace is captured at the call site.
// Exported for callers outside the package, such as the CLI front end,
// that surface the same fixed set of structural/IO failures.
func NewError(stage string, kind Kind, cause error) *Error {
	return newError(stage, kind, cause)
}

func newError(stage string, kind Kind, cause error) *Error {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Stage: stage, cause: wrapped}
}
