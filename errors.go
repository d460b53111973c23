package iocoro

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

var (
	// ErrUnavailableInput means a coroutine was resumed without input
	// while it had no operation armed, typically a second poll without
	// re-arming.
	ErrUnavailableInput = errors.New("iocoro: unavailable input")

	// ErrUnexpectedInput means a coroutine was handed a response it
	// does not understand, such as a write response fed to a reader.
	ErrUnexpectedInput = errors.New("iocoro: unexpected input")

	// ErrIO means the driver could not perform the requested operation.
	ErrIO = errors.New("iocoro: i/o failure")
)

// IOError reports a failed read or write. Data is the buffer or bytes
// handed back by the driver, so nothing is lost.
type IOError struct {
	Kind Kind
	Data []byte
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %v of %d bytes", ErrIO, e.Kind, len(e.Data))
	}
	return fmt.Sprintf("%v: %v of %d bytes: %v", ErrIO, e.Kind, len(e.Data), e.Err)
}

func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIO}
	}
	return []error{ErrIO, e.Err}
}

// WouldBlock reports whether the operation failed only because it could
// not make progress yet.
func (e *IOError) WouldBlock() bool {
	return iox.IsWouldBlock(e.Err)
}

// UnexpectedInputError carries the input a coroutine rejected.
type UnexpectedInputError struct {
	Input Io
}

func (e *UnexpectedInputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnexpectedInput, e.Input)
}

func (e *UnexpectedInputError) Is(target error) bool {
	return target == ErrUnexpectedInput
}
