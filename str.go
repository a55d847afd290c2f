package pdftext

import (
	"bytes"
)

// unescape resolves the backslash escapes of a literal string payload.
func unescape(raw []byte) []byte {
	if bytes.IndexByte(raw, backslash) < 0 {
		return raw
	}
	str := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != backslash {
			str = append(str, b)
			continue
		}
		if i+1 >= len(raw) {
			str = append(str, backslash)
			break
		}
		i++
		switch b = raw[i]; b {
		case 'n':
			str = append(str, nl)
		case 'r':
			str = append(str, cr)
		case 't':
			str = append(str, tab)
		case 'b':
			str = append(str, backspace)
		case 'f':
			str = append(str, formfeed)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			var (
				code = int(b - '0')
				j    = 1
			)
			for ; j < 3 && i+1 < len(raw) && isOctal(raw[i+1]); j++ {
				i++
				code = code<<3 | int(raw[i]-'0')
			}
			// high order overflow of \400-\777 is dropped
			str = append(str, byte(code))
		default:
			// covers \( \) \\ and any unknown escape
			str = append(str, b)
		}
	}
	return str
}

// readLiteral reads the literal string opened by buf[start]. It returns the
// payload with its escapes left untouched and the index following the
// closing parenthesis. ok is false when the parentheses never balance.
func readLiteral(buf []byte, start int) ([]byte, int, bool) {
	var (
		str   []byte
		depth int
	)
	for i := start + 1; i < len(buf); i++ {
		switch b := buf[i]; b {
		case backslash:
			str = append(str, b)
			if i+1 < len(buf) {
				i++
				str = append(str, buf[i])
			}
		case lparen:
			depth++
			str = append(str, b)
		case rparen:
			if depth == 0 {
				return str, i + 1, true
			}
			depth--
			str = append(str, b)
		default:
			str = append(str, b)
		}
	}
	return nil, start, false
}

// readArray reads the strings of the array opened by buf[start]. Other array
// elements, such as the kerning adjustments of TJ, are skipped.
func readArray(buf []byte, start int) ([][]byte, int, bool) {
	var list [][]byte
	for i := start + 1; i < len(buf); {
		switch buf[i] {
		case rsquare:
			return list, i + 1, true
		case lparen:
			str, end, ok := readLiteral(buf, i)
			if !ok {
				return nil, start, false
			}
			list = append(list, unescape(str))
			i = end
		default:
			i++
		}
	}
	return nil, start, false
}

func skipBlank(buf []byte, i int) int {
	for i < len(buf) && isBlank(buf[i]) {
		i++
	}
	return i
}

func isOperator(buf []byte, i int, op string) bool {
	return i+len(op) <= len(buf) && string(buf[i:i+len(op)]) == op
}

const (
	nl        = '\n'
	cr        = '\r'
	space     = ' '
	tab       = '\t'
	formfeed  = '\f'
	backspace = '\b'
	null      = 0
	lsquare   = '['
	rsquare   = ']'
	lparen    = '('
	rparen    = ')'
	backslash = '\\'
)

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}

func isSpace(b byte) bool {
	return b == space || b == tab
}

func isBlank(b byte) bool {
	return isSpace(b) || b == cr || b == nl || b == formfeed || b == null
}
