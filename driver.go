package iocoro

import (
	"context"
	"errors"
	"io"
	"runtime/trace"

	"code.hybscloud.com/iox"
)

const (
	driverTraceTaskType   = "iocoro-run"
	driverTraceRegionType = "iocoro-handle"
	driverTraceCategory   = "iocoro"
)

// Coroutine is a resumable state machine describing I/O without
// performing it. Read, Write and Func implement it.
type Coroutine interface {
	Resume(*Io) Result
}

// Driver performs the requests coroutines issue.
//
// Handle receives a Read or Write request and returns the matching
// response: a success carrying an Output, or the request's data handed
// back with a cause. A request the driver cannot serve comes back
// wrapped in UnexpectedInput.
type Driver interface {
	Handle(ctx context.Context, req Io) Io
}

// Run drives c against d until it stops being pending. It returns the
// completion Output, or the error of a failed or misdriven result.
// Run never retries; ctx is checked before each request is handed to
// the driver. A cancelled Run returns an *IOError wrapping ctx.Err()
// whose Data is the request it did not perform.
func Run(ctx context.Context, d Driver, c Coroutine) (Output, error) {
	var tracer *trace.Task

	ctx, tracer = trace.NewTask(withCoroutineContext(ctx, c), driverTraceTaskType)
	defer tracer.End()

	res := c.Resume(nil)
	for res.IsPending() {
		req := res.Io()
		if err := ctx.Err(); err != nil {
			trace.Logf(ctx, driverTraceCategory, "RUN CANCEL %v", err)
			return Output{}, &IOError{Kind: req.kind, Data: req.data, Err: err}
		}
		trace.Logf(ctx, driverTraceCategory, "RUN REQ %v", req)
		resp := handle(ctx, d, req)
		res = c.Resume(&resp)
	}

	trace.Logf(ctx, driverTraceCategory, "RUN DONE %v", res)

	if res.IsComplete() {
		return res.Output(), nil
	}
	return Output{}, res.Err()
}

func handle(ctx context.Context, d Driver, req Io) Io {
	defer trace.StartRegion(ctx, driverTraceRegionType).End()
	return d.Handle(ctx, req)
}

// StreamDriver performs requests against a blocking or non-blocking
// stream. Each read fills the buffer with a single Read call and each
// write issues a single Write call.
//
// io.EOF ends a read successfully with whatever was returned, possibly
// nothing. iox.ErrMore counts as progress. Any other error, including
// iox.ErrWouldBlock, fails the request and hands its data back.
type StreamDriver struct {
	r io.Reader
	w io.Writer
}

// NewStreamDriver creates a driver for rw.
func NewStreamDriver(rw io.ReadWriter) *StreamDriver {
	return &StreamDriver{r: rw, w: rw}
}

// NewReaderDriver creates a driver that only serves reads.
func NewReaderDriver(r io.Reader) *StreamDriver {
	return &StreamDriver{r: r}
}

// NewWriterDriver creates a driver that only serves writes.
func NewWriterDriver(w io.Writer) *StreamDriver {
	return &StreamDriver{w: w}
}

// Handle performs req with a single Read or Write call.
func (d *StreamDriver) Handle(ctx context.Context, req Io) Io {
	if !req.IsRequest() {
		return UnexpectedInput(req)
	}

	switch {
	case req.kind == KindRead && d.r != nil:
		buf := req.data
		n, err := d.r.Read(buf)
		if err == nil || errors.Is(err, io.EOF) || iox.IsMore(err) {
			return ReadSuccess(Output{Bytes: buf, N: n})
		}
		trace.Logf(ctx, driverTraceCategory, "READ ERR %v", err)
		return ReadFailure(buf, err)

	case req.kind == KindWrite && d.w != nil:
		p := req.data
		n, err := d.w.Write(p)
		if err == nil || iox.IsMore(err) {
			return WriteSuccess(Output{Bytes: p, N: n})
		}
		trace.Logf(ctx, driverTraceCategory, "WRITE ERR %v", err)
		return WriteFailure(p, err)
	}

	return UnexpectedInput(req)
}
