package iocoro

import "github.com/gammazero/deque"

// Write is an I/O-free coroutine writing bytes to a stream. Bytes can
// be set or enqueued any number of times before the coroutine is
// driven; the first Resume materializes them into one slice and hands
// it out as a write request.
//
// The zero Write holds no bytes.
type Write struct {
	noCopy noCopy
	segs   deque.Deque[[]byte]
	n      int
	armed  bool
}

// NewWrite creates a Write armed with a copy of p.
func NewWrite(p []byte) *Write {
	w := new(Write)
	w.SetBytes(p)
	return w
}

// SetBytes replaces any held bytes with a copy of p.
func (w *Write) SetBytes(p []byte) {
	w.segs.Clear()
	w.n = 0
	w.armed = true
	w.push(p)
}

// SetString replaces any held bytes with the bytes of s.
func (w *Write) SetString(s string) {
	w.SetBytes([]byte(s))
}

// WithBytes is the builder form of SetBytes.
func (w *Write) WithBytes(p []byte) *Write {
	w.SetBytes(p)
	return w
}

// EnqueueBytes appends a copy of p to the held bytes. A disarmed Write
// behaves as if SetBytes had been called.
func (w *Write) EnqueueBytes(p []byte) {
	if !w.armed {
		w.SetBytes(p)
		return
	}
	w.push(p)
}

// EnqueueString appends the bytes of s to the held bytes.
func (w *Write) EnqueueString(s string) {
	w.EnqueueBytes([]byte(s))
}

// Armed reports whether the coroutine holds bytes to issue.
func (w *Write) Armed() bool {
	return w.armed
}

// Len returns the number of bytes pending write.
func (w *Write) Len() int {
	return w.n
}

// Resume makes the coroutine progress. Pass nil to obtain the write
// request, then the driver's response. A failed response leaves the
// coroutine disarmed; the unwritten bytes travel back in the Failed
// result.
func (w *Write) Resume(in *Io) Result {
	if in == nil {
		if !w.armed {
			return ProtocolError(UnavailableInput())
		}
		return Pending(WriteRequest(w.take()))
	}

	if in.kind != KindWrite {
		return ProtocolError(UnexpectedInput(*in))
	}

	if out, ok := in.Output(); ok {
		return Complete(out)
	}
	return Failed(WriteFailure(in.data, in.cause))
}

func (w *Write) push(p []byte) {
	if len(p) == 0 {
		return
	}
	w.segs.PushBack(append([]byte(nil), p...))
	w.n += len(p)
}

// take moves the held bytes out and disarms the coroutine.
func (w *Write) take() []byte {
	var p []byte
	switch w.segs.Len() {
	case 0:
		p = []byte{}
	case 1:
		p = w.segs.PopFront()
	default:
		p = make([]byte, 0, w.n)
		for w.segs.Len() > 0 {
			p = append(p, w.segs.PopFront()...)
		}
	}
	w.n, w.armed = 0, false
	return p
}
