package iocoro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRequest(t *testing.T) {
	r := require.New(t)

	for _, buf := range [][]byte{nil, {}, {1}, {1, 2, 3}, make([]byte, 4096)} {
		rd := NewRead(buf)
		res := rd.Resume(nil)
		r.Equal(StatusPending, res.Status())
		r.Equal(KindRead, res.Io().Kind())
		r.True(res.Io().IsRequest())
		r.Equal(buf, res.Io().Data())
		r.Len(res.Io().Data(), len(buf))
		r.False(rd.Armed())
		r.NoError(res.Err())
	}
}

func TestReadRequestMovesBuffer(t *testing.T) {
	r := require.New(t)

	buf := []byte("abc")
	rd := NewRead(buf)
	req := rd.Resume(nil).Io()
	req.Data()[0] = 'z'
	r.Equal(byte('z'), buf[0])
	r.Nil(rd.buf)
}

func TestReadDefault(t *testing.T) {
	r := require.New(t)

	res := NewDefaultRead().Resume(nil)
	r.True(res.IsPending())
	r.Equal(make([]byte, DefaultReadBufferSize), res.Io().Data())
	r.Len(res.Io().Data(), 1024)

	var zero Read
	r.False(zero.Armed())
	r.ErrorIs(zero.Resume(nil).Err(), ErrUnavailableInput)
}

func TestReadUnavailableInput(t *testing.T) {
	r := require.New(t)

	rd := NewReadSize(8)
	r.True(rd.Resume(nil).IsPending())

	res := rd.Resume(nil)
	r.Equal(StatusProtocolError, res.Status())
	r.Equal(KindUnavailableInput, res.Io().Kind())
	r.ErrorIs(res.Err(), ErrUnavailableInput)

	rd.SetBuffer([]byte{9})
	r.True(rd.Armed())
	res = rd.Resume(nil)
	r.True(res.IsPending())
	r.Equal([]byte{9}, res.Io().Data())
}

func TestReadUnexpectedInput(t *testing.T) {
	r := require.New(t)

	for _, in := range []Io{
		WriteRequest([]byte("x")),
		WriteSuccess(Output{Bytes: []byte("x"), N: 1}),
		UnavailableInput(),
		{},
	} {
		rd := NewDefaultRead()
		res := rd.Resume(&in)
		r.Equal(StatusProtocolError, res.Status())
		r.Equal(KindUnexpectedInput, res.Io().Kind())

		got, ok := res.Io().Input()
		r.True(ok)
		r.Equal(in, got)

		var uerr *UnexpectedInputError
		r.True(errors.As(res.Err(), &uerr))
		r.Equal(in, uerr.Input)
		r.ErrorIs(res.Err(), ErrUnexpectedInput)
	}
}

func TestReadSuccess(t *testing.T) {
	r := require.New(t)

	rd := NewReadSize(4)
	req := rd.Resume(nil).Io()
	n := copy(req.Data(), "hi")

	out := Output{Bytes: req.Data(), N: n}
	resp := ReadSuccess(out)
	res := rd.Resume(&resp)
	r.True(res.IsComplete())
	r.Equal(out, res.Output())
	r.Equal([]byte("hi"), res.Output().Filled())
	r.NoError(res.Err())
}

func TestReadFailure(t *testing.T) {
	r := require.New(t)

	cause := errors.New("boom")
	rd := NewRead([]byte("data"))
	req := rd.Resume(nil).Io()

	resp := ReadFailure(req.Data(), cause)
	res := rd.Resume(&resp)
	r.Equal(StatusFailed, res.Status())
	r.Equal(KindRead, res.Io().Kind())
	r.Equal([]byte("data"), res.Io().Data())
	r.Equal(cause, res.Io().Cause())
	r.True(res.Io().IsRequest())
	r.False(rd.Armed())

	var ioerr *IOError
	r.True(errors.As(res.Err(), &ioerr))
	r.Equal([]byte("data"), ioerr.Data)
	r.Equal(KindRead, ioerr.Kind)
	r.ErrorIs(res.Err(), ErrIO)
	r.ErrorIs(res.Err(), cause)

	// Handing the request back unchanged is a failure without a cause.
	rd.SetBuffer([]byte("again"))
	req = rd.Resume(nil).Io()
	res = rd.Resume(&req)
	r.Equal(StatusFailed, res.Status())
	r.Equal([]byte("again"), res.Io().Data())
	r.Nil(res.Io().Cause())
	r.ErrorIs(res.Err(), ErrIO)
}
