package pdftext

import (
	"fmt"
	"io"
)

// Result is the text recovered from a document. NumPages is always nil since
// pages are never counted.
type Result struct {
	Text     string
	NumPages *int
}

func (r Result) IsEmpty() bool {
	return r.Text == ""
}

// InvalidInputError is returned when the value given to ExtractValue is not
// a byte sequence.
type InvalidInputError struct {
	Type string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: expected bytes, got %s", e.Type)
}

// Extract returns the text drawn by the content streams of doc. Malformed
// content reduces the text that can be recovered but never fails.
func Extract(doc []byte) Result {
	return extractText(doc)
}

// ExtractValue is Extract for callers holding an untyped value. v must be a
// []byte or an io.Reader, which is read up to DefaultMaxSize bytes.
func ExtractValue(v interface{}) (Result, error) {
	switch v := v.(type) {
	case []byte:
		return Extract(v), nil
	case io.Reader:
		doc, err := ReadFrom(v, DefaultMaxSize)
		if err != nil {
			return Result{}, err
		}
		return doc.Extract(), nil
	default:
		return Result{}, &InvalidInputError{Type: fmt.Sprintf("%T", v)}
	}
}

type Stats struct {
	Streams    int
	Compressed int
	WithText   int
	Chars      int
}

type Document struct {
	buf    []byte
	closed bool
}

func New(b []byte) *Document {
	return &Document{buf: b}
}

// Open reads file. Files larger than DefaultMaxSize are rejected.
func Open(file string) (*Document, error) {
	return readFile(file, DefaultMaxSize)
}

func OpenWithLimit(file string, limit int64) (*Document, error) {
	return readFile(file, limit)
}

// ReadFrom reads a whole document from r. A limit lower or equal to zero
// means DefaultMaxSize.
func ReadFrom(r io.Reader, limit int64) (*Document, error) {
	return readAll(r, limit)
}

func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.buf, d.closed = nil, true
	return nil
}

func (d *Document) Size() int64 {
	return int64(len(d.buf))
}

func (d *Document) Extract() Result {
	return extractText(d.buf)
}

// Walk calls fn for each stream of the document until fn returns false.
func (d *Document) Walk(fn func(Stream) bool) error {
	if d.closed {
		return ErrClosed
	}
	walkStreams(d.buf, fn)
	return nil
}

func (d *Document) Stats() Stats {
	var st Stats
	walkStreams(d.buf, func(s Stream) bool {
		st.Streams++
		body := s.Body()
		if body.IsCompressed() {
			st.Compressed++
		}
		if lines := showText(body.Data); len(lines) > 0 {
			st.WithText++
		}
		return true
	})
	st.Chars = len([]rune(d.Extract().Text))
	return st
}
