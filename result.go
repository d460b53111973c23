package iocoro

import "fmt"

// Status classifies the outcome of a single Resume.
//
// StatusPending:        a request was issued; perform it and resume.
// StatusComplete:       the operation finished; the Output is final.
// StatusFailed:         the driver reported an I/O failure.
// StatusProtocolError:  the coroutine was driven incorrectly.
type Status uint8

const (
	StatusPending Status = iota
	StatusComplete
	StatusFailed
	StatusProtocolError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusComplete:
		return "Complete"
	case StatusFailed:
		return "Failed"
	case StatusProtocolError:
		return "ProtocolError"
	default:
		return "Invalid"
	}
}

// Result is what Resume returns.
type Result struct {
	status Status
	output Output
	io     Io
}

// Pending reports an issued request.
func Pending(req Io) Result {
	return Result{status: StatusPending, io: req}
}

// Complete reports a finished operation.
func Complete(out Output) Result {
	return Result{status: StatusComplete, output: out}
}

// Failed reports an I/O failure. The failure signal still owns the
// data and can be handed to a driver again as a retry.
func Failed(failure Io) Result {
	return Result{status: StatusFailed, io: failure}
}

// ProtocolError reports driver misuse through an UnavailableInput or
// UnexpectedInput signal.
func ProtocolError(signal Io) Result {
	return Result{status: StatusProtocolError, io: signal}
}

// Status classifies r.
func (r Result) Status() Status {
	return r.status
}

// Output returns the completion value. It is only meaningful when
// Status is StatusComplete.
func (r Result) Output() Output {
	return r.output
}

// Io returns the request, failure or protocol signal of a result that
// is not complete.
func (r Result) Io() Io {
	return r.io
}

// IsPending reports whether r carries a request to perform.
func (r Result) IsPending() bool {
	return r.status == StatusPending
}

// IsComplete reports whether r carries the final Output.
func (r Result) IsComplete() bool {
	return r.status == StatusComplete
}

// Err converts a failed or misdriven result to an error. Pending and
// complete results return nil.
func (r Result) Err() error {
	switch r.status {
	case StatusFailed:
		return &IOError{Kind: r.io.kind, Data: r.io.data, Err: r.io.cause}
	case StatusProtocolError:
		if in, ok := r.io.Input(); ok {
			return &UnexpectedInputError{Input: in}
		}
		return ErrUnavailableInput
	default:
		return nil
	}
}

func (r Result) String() string {
	if r.status == StatusComplete {
		return fmt.Sprintf("%v(%d bytes)", r.status, r.output.N)
	}
	return fmt.Sprintf("%v(%v)", r.status, r.io)
}
