package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	begstream = []byte("stream")
	endstream = []byte("endstream")
)

var (
	ErrTooLarge = errors.New("document too large")
	ErrClosed   = errors.New("document closed")
)

// DefaultMaxSize is the size limit used by Open.
const DefaultMaxSize = 32 << 20

func readFile(file string, limit int64) (*Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	doc, err := readAll(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return doc, nil
}

func readAll(r io.Reader, limit int64) (*Document, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	buf, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if int64(len(buf)) > limit {
		return nil, fmt.Errorf("%w (limit %d bytes)", ErrTooLarge, limit)
	}
	return New(buf), nil
}

// walkStreams calls fn for every stream of buf in document order. It stops at
// the first stream keyword without an endstream keyword after it.
func walkStreams(buf []byte, fn func(Stream) bool) {
	rs := NewReader(buf)
	for !rs.AtEOF() {
		x := rs.Index(begstream)
		if x < 0 {
			break
		}
		rs.Discard(x + len(begstream))

		offset := rs.Tell()
		x = rs.Index(endstream)
		if x < 0 {
			break
		}
		s := Stream{
			Offset: offset,
			Raw:    rs.Next(x),
		}
		rs.Discard(len(endstream))
		if !fn(s) {
			break
		}
	}
}

func extractText(buf []byte) Result {
	var blocks [][]byte
	walkStreams(buf, func(s Stream) bool {
		if b := streamText(s.Raw); len(b) > 0 {
			blocks = append(blocks, b)
		}
		return true
	})
	text := bytes.Join(blocks, []byte{nl, nl})
	text = bytes.ReplaceAll(text, []byte{null}, nil)
	return Result{
		Text: strings.TrimSpace(toString(text)),
	}
}

func streamText(raw []byte) []byte {
	body := DecodeStream(raw)
	return bytes.Join(showText(body.Data), []byte{nl})
}

// toString maps every byte to the rune of the same value.
func toString(b []byte) string {
	str, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(str)
}
