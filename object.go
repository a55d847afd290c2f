package pdftext

import (
	"bytes"
	"compress/zlib"
	"io"
)

type Encoding int8

const (
	Raw Encoding = iota
	Decompressed
)

func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case Decompressed:
		return "deflate"
	default:
		return "unknown"
	}
}

// Stream is the part of a document found between a stream keyword and the
// following endstream keyword.
type Stream struct {
	Offset int64
	Raw    []byte
}

func (s Stream) Body() Body {
	return DecodeStream(s.Raw)
}

func (s Stream) Text() string {
	return ExtractStreamText(s.Raw)
}

type Body struct {
	Data     []byte
	Encoding Encoding
}

func (b Body) IsCompressed() bool {
	return b.Encoding == Decompressed
}

// DecodeStream strips the end of line following the stream keyword and
// inflates what remains. Data that can not be inflated is returned as is.
func DecodeStream(raw []byte) Body {
	switch {
	case bytes.HasPrefix(raw, crlf):
		raw = raw[len(crlf):]
	case len(raw) > 0 && raw[0] == nl:
		raw = raw[1:]
	}
	buf, err := inflate(raw)
	if err != nil {
		return Body{
			Data:     raw,
			Encoding: Raw,
		}
	}
	return Body{
		Data:     buf,
		Encoding: Decompressed,
	}
}

func inflate(raw []byte) ([]byte, error) {
	z, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer z.Close()
	return io.ReadAll(z)
}

var crlf = []byte{cr, nl}
