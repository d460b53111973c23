// Package iocoro provides I/O-free coroutines: resumable state
// machines that describe a buffered read or write without performing
// it. A coroutine owns only the buffer it needs; the I/O itself is left
// to a driver that executes the requests.
//
// Key components:
//
//   - Read and Write: coroutines for one read into a buffer and one
//     write of accumulated bytes.
//
//   - Io and Output: the request/response vocabulary shared between
//     coroutines and drivers. Data moves with the Io value.
//
//   - Result: the outcome of Resume, one of Pending (a request was
//     issued), Complete, Failed (the driver reported an I/O failure)
//     or ProtocolError (the coroutine was driven incorrectly).
//
//   - Func: a coroutine written in direct style, able to await nested
//     coroutines.
//
//   - Driver, StreamDriver and Run: a synchronous executor that
//     performs requests against an io.Reader or io.Writer.
//
// Driving a coroutine by hand:
//
//	w := iocoro.NewWrite([]byte("hello"))
//	res := w.Resume(nil) // Pending(Write request)
//	n, err := conn.Write(res.Io().Data())
//	resp := iocoro.WriteSuccess(iocoro.Output{Bytes: res.Io().Data(), N: n})
//	if err != nil {
//		resp = iocoro.WriteFailure(res.Io().Data(), err)
//	}
//	res = w.Resume(&resp) // Complete or Failed
package iocoro
