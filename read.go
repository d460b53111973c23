package iocoro

const (
	// DefaultReadBufferSize is the size of the zero-filled buffer a
	// default Read is armed with.
	DefaultReadBufferSize = 1024
)

// Read is an I/O-free coroutine reading bytes into a buffer. It never
// touches a reader itself: the first Resume hands the buffer out as a
// read request, and the next one consumes the driver's response.
//
// The zero Read is disarmed; call SetBuffer before resuming it.
type Read struct {
	noCopy noCopy
	buf    []byte
	armed  bool
}

// NewRead creates a Read armed with buf. Any size is accepted,
// including an empty or nil buffer.
func NewRead(buf []byte) *Read {
	return &Read{buf: buf, armed: true}
}

// NewReadSize creates a Read armed with n zero bytes.
func NewReadSize(n int) *Read {
	return NewRead(make([]byte, n))
}

// NewDefaultRead creates a Read armed with DefaultReadBufferSize zero
// bytes.
func NewDefaultRead() *Read {
	return NewReadSize(DefaultReadBufferSize)
}

// SetBuffer replaces any held buffer with buf and arms the coroutine
// for a new read.
func (r *Read) SetBuffer(buf []byte) {
	r.buf = buf
	r.armed = true
}

// Armed reports whether the coroutine holds a buffer to issue.
func (r *Read) Armed() bool {
	return r.armed
}

// Resume makes the coroutine progress. Pass nil to obtain the read
// request, then the driver's response. A failed response leaves the
// coroutine disarmed; the buffer travels back in the Failed result.
func (r *Read) Resume(in *Io) Result {
	if in == nil {
		if !r.armed {
			return ProtocolError(UnavailableInput())
		}
		buf := r.buf
		r.buf, r.armed = nil, false
		return Pending(ReadRequest(buf))
	}

	if in.kind != KindRead {
		return ProtocolError(UnexpectedInput(*in))
	}

	if out, ok := in.Output(); ok {
		return Complete(out)
	}
	return Failed(ReadFailure(in.data, in.cause))
}
