package iocoro

import "fmt"

// Kind tags the variant carried by an Io value.
type Kind uint8

const (
	// KindRead is a read request, or the response to one.
	KindRead Kind = iota + 1
	// KindWrite is a write request, or the response to one.
	KindWrite
	// KindUnavailableInput signals a resume without input while no
	// operation was armed.
	KindUnavailableInput
	// KindUnexpectedInput signals a response that does not match the
	// coroutine it was handed to.
	KindUnexpectedInput
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "Read"
	case KindWrite:
		return "Write"
	case KindUnavailableInput:
		return "UnavailableInput"
	case KindUnexpectedInput:
		return "UnexpectedInput"
	default:
		return "Invalid"
	}
}

// Output is the completion payload of a read or write. Bytes is the
// buffer that was filled or the bytes that were written, and N is the
// number of bytes actually transferred.
type Output struct {
	Bytes []byte
	N     int
}

// Filled returns the transferred prefix of Bytes. N is clamped to
// the bounds of Bytes.
func (o Output) Filled() []byte {
	return o.Bytes[:max(0, min(o.N, len(o.Bytes)))]
}

// Io is the request/response vocabulary shared by coroutines and
// drivers.
//
// Read and Write values flow both ways. Coroutine to driver, they
// carry the data the operation needs. Driver to coroutine, they
// carry either an Output or, on failure, the same data handed back
// untouched along with an optional cause. The data moves with the
// value: whoever holds the Io owns the slice.
type Io struct {
	kind   Kind
	data   []byte
	output *Output
	cause  error
	input  *Io
}

// ReadRequest asks a driver to fill buf.
func ReadRequest(buf []byte) Io {
	return Io{kind: KindRead, data: buf}
}

// ReadSuccess reports a completed read.
func ReadSuccess(out Output) Io {
	return Io{kind: KindRead, output: &out}
}

// ReadFailure hands buf back after a read could not be performed.
func ReadFailure(buf []byte, cause error) Io {
	return Io{kind: KindRead, data: buf, cause: cause}
}

// WriteRequest asks a driver to write p.
func WriteRequest(p []byte) Io {
	return Io{kind: KindWrite, data: p}
}

// WriteSuccess reports a completed write.
func WriteSuccess(out Output) Io {
	return Io{kind: KindWrite, output: &out}
}

// WriteFailure hands p back after a write could not be performed.
func WriteFailure(p []byte, cause error) Io {
	return Io{kind: KindWrite, data: p, cause: cause}
}

// UnavailableInput is the protocol signal for a resume without input
// while nothing was armed.
func UnavailableInput() Io {
	return Io{kind: KindUnavailableInput}
}

// UnexpectedInput wraps an input the receiver cannot handle.
func UnexpectedInput(in Io) Io {
	return Io{kind: KindUnexpectedInput, input: &in}
}

// Kind returns the variant tag of io.
func (io Io) Kind() Kind {
	return io.kind
}

// Data returns the buffer or bytes of a request or failure, nil for
// successes and protocol signals.
func (io Io) Data() []byte {
	return io.data
}

// Output returns the completion payload of a successful response.
func (io Io) Output() (Output, bool) {
	if io.output == nil {
		return Output{}, false
	}
	return *io.output, true
}

// Cause returns the error a driver attached to a failure, if any.
func (io Io) Cause() error {
	return io.cause
}

// Input returns the value wrapped by an UnexpectedInput signal.
func (io Io) Input() (Io, bool) {
	if io.input == nil {
		return Io{}, false
	}
	return *io.input, true
}

// IsRequest reports whether io is a read or write still carrying its
// data, i.e. an operation a driver can perform. A failed response is
// also a request: handing it to a driver again retries it.
func (io Io) IsRequest() bool {
	return (io.kind == KindRead || io.kind == KindWrite) && io.output == nil
}

func (io Io) String() string {
	switch io.kind {
	case KindRead, KindWrite:
		if io.output != nil {
			return fmt.Sprintf("%v(ok %d/%d)", io.kind, io.output.N, len(io.output.Bytes))
		}
		if io.cause != nil {
			return fmt.Sprintf("%v(err %d bytes: %v)", io.kind, len(io.data), io.cause)
		}
		return fmt.Sprintf("%v(%d bytes)", io.kind, len(io.data))
	case KindUnexpectedInput:
		return fmt.Sprintf("%v(%v)", io.kind, *io.input)
	default:
		return io.kind.String()
	}
}
