package iocoro

import (
	"errors"

	"github.com/webriots/coro"
)

// Func is a coroutine written in direct style. Its body calls yield
// with a request whenever it needs I/O; yield returns the response the
// driver hands to the next Resume. The Result the body returns ends the
// coroutine.
//
// A body can drive nested Read and Write coroutines with Await, which
// turns a sequence of operations into a single resumable unit.
type Func struct {
	noCopy  noCopy
	resume  func(Io) (Io, bool)
	cancel  func()
	result  Result
	started bool
	done    bool
}

// NewFunc creates a Func running fn. Nothing executes until the first
// Resume.
func NewFunc(fn func(yield func(Io) Io) Result) *Func {
	f := new(Func)
	f.resume, f.cancel = coro.New(
		func(yield func(Io) Io, _ func() Io) (z Io) {
			defer func() {
				if p := recover(); p != nil {
					if err, ok := p.(error); ok && errors.Is(err, coro.ErrCanceled) {
						return
					}
					panic(p)
				}
			}()
			f.result = fn(yield)
			return
		},
	)
	return f
}

// Resume makes the body progress. The first call must pass nil and runs
// the body up to its first yield. Every following call while a request
// is outstanding must pass the response to that request.
func (f *Func) Resume(in *Io) Result {
	switch {
	case f.done:
		if in != nil {
			return ProtocolError(UnexpectedInput(*in))
		}
		return ProtocolError(UnavailableInput())
	case !f.started:
		if in != nil {
			return ProtocolError(UnexpectedInput(*in))
		}
		f.started = true
		return f.step(Io{})
	case in == nil:
		return ProtocolError(UnavailableInput())
	default:
		return f.step(*in)
	}
}

// Close cancels a body that has not returned yet.
func (f *Func) Close() {
	if !f.done {
		f.done = true
		f.cancel()
	}
}

func (f *Func) step(in Io) Result {
	req, ok := f.resume(in)
	if ok {
		return Pending(req)
	}
	f.done = true
	return f.result
}

// Await drives c to the end from inside a Func body, yielding each of
// its requests and returning its final Result.
func Await(yield func(Io) Io, c Coroutine) Result {
	res := c.Resume(nil)
	for res.IsPending() {
		resp := yield(res.Io())
		res = c.Resume(&resp)
	}
	return res
}
