package program

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the result code of a program ingestion call, and the per-device
// code written to a WithBinaryStatus output slice.
type Status int

//go:generate go tool enumer -type=Status -output=gen_status_enumer.go status.go

const (
	// Success: the call completed and a valid Program was returned.
	Success Status = iota

	// InvalidContext: the context given is nil.
	InvalidContext

	// InvalidValue: malformed arguments, e.g. an empty device list or a
	// missing binary for a device outside empty-program mode.
	InvalidValue

	// InvalidDevice: a duplicate device in the request, or a device that
	// does not belong to the context.
	InvalidDevice

	// InvalidBinary: a blob in none of the recognized formats, or a native
	// archive whose payload failed to deserialize.
	InvalidBinary

	// BuildProgramFailure: a SPIR-V blob without kernel-mode semantics, a
	// device or runtime without SPIR-V support, or a cache-directory
	// creation failure.
	BuildProgramFailure

	// OutOfHostMemory: a host allocation failure.
	OutOfHostMemory
)

// Error implements the error interface, so a Status can be used as an
// errors.Is target: errors.Is(err, program.InvalidDevice).
func (s Status) Error() string { return s.String() }

// StatusError is an error carrying a Status code, optionally wrapping the
// underlying cause.
type StatusError struct {
	Status Status
	msg    string
	cause  error
}

func (e *StatusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.msg, e.Status, e.cause)
	}
	return fmt.Sprintf("%s (%s)", e.msg, e.Status)
}

func (e *StatusError) Unwrap() error { return e.cause }

// Is matches a bare Status target against the error's code.
func (e *StatusError) Is(target error) bool {
	s, ok := target.(Status)
	return ok && s == e.Status
}

// StatusOf extracts the Status carried by err: Success for a nil error, and
// BuildProgramFailure for errors that carry no explicit status.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return BuildProgramFailure
}

// statusErrorf builds a StatusError with a formatted message.
func statusErrorf(s Status, format string, args ...any) error {
	return &StatusError{Status: s, msg: fmt.Sprintf(format, args...)}
}

// wrapStatus attaches a Status and message to an underlying error.
func wrapStatus(s Status, cause error, format string, args ...any) error {
	return &StatusError{Status: s, msg: fmt.Sprintf(format, args...), cause: cause}
}
