package pdftext

import (
	"bytes"
	"io"
)

type Reader struct {
	buf []byte
	ptr int
}

func NewReader(b []byte) *Reader {
	return &Reader{
		buf: b,
		ptr: 0,
	}
}

func (r *Reader) AtEOF() bool {
	return r.ptr >= len(r.buf)
}

// Index reports the position of b relative to the current offset, or -1.
func (r *Reader) Index(b []byte) int {
	if r.ptr > len(r.buf) {
		return -1
	}
	return bytes.Index(r.buf[r.ptr:], b)
}

// Next returns the n following bytes without copying them and moves the
// offset past them.
func (r *Reader) Next(n int) []byte {
	if r.ptr >= len(r.buf) {
		return nil
	}
	if end := r.ptr + n; end > len(r.buf) {
		n = len(r.buf) - r.ptr
	}
	b := r.buf[r.ptr : r.ptr+n]
	r.ptr += n
	return b
}

func (r *Reader) Discard(n int) (int, error) {
	if r.ptr >= len(r.buf) {
		return 0, io.EOF
	}
	r.ptr += n
	if r.ptr >= len(r.buf) {
		n -= r.ptr - len(r.buf)
		r.ptr = len(r.buf)
	}
	return n, nil
}

func (r *Reader) Read(b []byte) (int, error) {
	if r.ptr >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(b, r.buf[r.ptr:])
	r.ptr += n
	return n, nil
}

func (r *Reader) Tell() int64 {
	return int64(r.ptr)
}

