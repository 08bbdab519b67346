package encio

import (
	"errors"
	"fmt"
	"runtime"
)

// Errors are split into two wrappers; IOError and Error.
// IOError means the io.Reader/io.Writer misbehaved or the data read from it cannot be decoded,
// and the caller should stop trusting that stream.
// Error means the caller asked for something that cannot be encoded, such as a type without a field table,
// and should stop using the value or type in that way.
// Panics are only used when there is a clear misuse of the library; programmer error.
//
// Errors can be checked with
//
//	var encErr encio.Error
//	var ioErr encio.IOError
//	if errors.As(err, &encErr) {
//		//handle encoding error
//	} else if errors.As(err, &ioErr) {
//		//handle io error
//	}
//
// or against the kinds below with errors.Is.
var (
	// ErrMalformed is returned when the read data is impossible to decode.
	// Unknown, missing or repeated wire keys, trailing bytes and impossible lengths are all malformed data.
	ErrMalformed = errors.New("malformed")

	// ErrBadType is returned when a type is wrong, unresolvable or inappropriate.
	ErrBadType = errors.New("bad type")

	// ErrNilPointer is returned if a pointer that should not be nil is nil.
	ErrNilPointer = errors.New("nil pointer")

	// ErrBadConfig is returned when the config cannot be used, i.e. a codec Config without a Source.
	ErrBadConfig = errors.New("bad config")
)

// NewIOError returns an IOError wrapping err.
// rw is the io.Reader or io.Writer at fault, it may be nil.
// message has extra information about the error, and depth is the number of callers to skip when recording the caller,
// 0 being the function calling NewIOError.
func NewIOError(err error, rw interface{}, message string, depth int) error {
	if err == nil {
		return NewError(errors.New("unknown error"), "trying to create new IOError", 1)
	}

	return IOError{
		Err:     err,
		Message: message,
		Caller:  GetCaller(depth + 1),
		Source:  typeName(rw),
	}
}

// IOError is returned when io errors occur, or when read data is malformed.
type IOError struct {
	Err     error
	Message string
	Caller  string
	Source  string
}

// Error implements error.
func (e IOError) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	if e.Source != "" {
		str += e.Source + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap().
func (e IOError) Unwrap() error {
	return e.Err
}

// NewError returns an Error wrapping err with message and caller.
// depth is the number of callers to skip when recording the caller, 0 being the function calling NewError.
func NewError(err error, message string, depth int) error {
	return Error{
		Err:     err,
		Message: message,
		Caller:  GetCaller(depth + 1),
	}
}

// Error is returned when an internal error is encountered while encoding.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error.
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap().
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 writes the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}

func typeName(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%T", v)
}
