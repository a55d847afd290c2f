package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	data := []struct {
		Input string
		Want  string
	}{
		{Input: `plain`, Want: "plain"},
		{Input: `Line\nBreak`, Want: "Line\nBreak"},
		{Input: `\r\t\b\f`, Want: "\r\t\b\f"},
		{Input: `\(nested\)`, Want: "(nested)"},
		{Input: `back\\slash`, Want: `back\slash`},
		{Input: `\101\102C`, Want: "ABC"},
		{Input: `\53x`, Want: "+x"},
		{Input: `\0053`, Want: "\x053"},
		{Input: `\7`, Want: "\x07"},
		{Input: `caf\351`, Want: "caf\xe9"},
		{Input: `\777`, Want: "\xff"},
		{Input: `\q\8`, Want: "q8"},
		{Input: `trailing\`, Want: `trailing\`},
		{Input: ``, Want: ""},
	}
	for _, d := range data {
		got := unescape([]byte(d.Input))
		assert.Equal(t, d.Want, string(got), "unescape(%q)", d.Input)
	}
}

func TestReadLiteral(t *testing.T) {
	data := []struct {
		Input string
		Start int
		Want  string
		End   int
		Ok    bool
	}{
		{Input: "(abc) Tj", Want: "abc", End: 5, Ok: true},
		{Input: "(a(b)c) Tj", Want: "a(b)c", End: 7, Ok: true},
		{Input: `(a\)b) Tj`, Want: `a\)b`, End: 6, Ok: true},
		{Input: `(a\\) Tj`, Want: `a\\`, End: 5, Ok: true},
		{Input: "xx(y)", Start: 2, Want: "y", End: 5, Ok: true},
		{Input: "()", Want: "", End: 2, Ok: true},
		{Input: "(abc", Ok: false},
		{Input: "(a(b)", Ok: false},
		{Input: `(a\)`, Ok: false},
		{Input: `(a\`, Ok: false},
	}
	for _, d := range data {
		str, end, ok := readLiteral([]byte(d.Input), d.Start)
		if !d.Ok {
			assert.False(t, ok, "readLiteral(%q) should not match", d.Input)
			assert.Nil(t, str)
			continue
		}
		assert.True(t, ok, "readLiteral(%q) should match", d.Input)
		assert.Equal(t, d.Want, string(str))
		assert.Equal(t, d.End, end)
	}
}

func TestReadArray(t *testing.T) {
	t.Run("kerning", func(t *testing.T) {
		strs, end, ok := readArray([]byte("[(Hello) -120 (World)] TJ"), 0)
		assert.True(t, ok)
		assert.Equal(t, 22, end)
		assert.Equal(t, [][]byte{[]byte("Hello"), []byte("World")}, strs)
	})
	t.Run("escapes", func(t *testing.T) {
		strs, _, ok := readArray([]byte(`[(a\051) (\(b)]`), 0)
		assert.True(t, ok)
		assert.Equal(t, [][]byte{[]byte("a)"), []byte("(b")}, strs)
	})
	t.Run("nested", func(t *testing.T) {
		strs, _, ok := readArray([]byte("[(a(b)c)]"), 0)
		assert.True(t, ok)
		assert.Equal(t, [][]byte{[]byte("a(b)c")}, strs)
	})
	t.Run("empty", func(t *testing.T) {
		strs, end, ok := readArray([]byte("[]"), 0)
		assert.True(t, ok)
		assert.Equal(t, 2, end)
		assert.Empty(t, strs)
	})
	t.Run("numbers", func(t *testing.T) {
		strs, end, ok := readArray([]byte("[0 0 612 792]"), 0)
		assert.True(t, ok)
		assert.Equal(t, 13, end)
		assert.Empty(t, strs)
	})
	t.Run("unclosed", func(t *testing.T) {
		_, _, ok := readArray([]byte("[(a) 10"), 0)
		assert.False(t, ok)
	})
	t.Run("broken-string", func(t *testing.T) {
		_, _, ok := readArray([]byte("[(a) (b]"), 0)
		assert.False(t, ok)
	})
}
