package pdftext

const (
	showString = "Tj"
	showArray  = "TJ"
)

// ExtractStreamText returns the text shown by the content of one stream, one
// line per show operator.
func ExtractStreamText(raw []byte) string {
	return toString(streamText(raw))
}

// showText collects the operands of the Tj and TJ operators found in a content
// stream. Every other operator is ignored.
func showText(buf []byte) [][]byte {
	var list [][]byte
	for i := 0; i < len(buf); {
		switch buf[i] {
		case lparen:
			str, end, ok := readLiteral(buf, i)
			if !ok {
				i++
				break
			}
			if isOperator(buf, skipBlank(buf, end), showString) {
				list = append(list, unescape(str))
			}
			i = end
		case lsquare:
			strs, end, ok := readArray(buf, i)
			if !ok {
				i++
				break
			}
			if len(strs) > 0 && isOperator(buf, skipBlank(buf, end), showArray) {
				list = append(list, concat(strs))
			}
			i = end
		default:
			i++
		}
	}
	return list
}

func concat(strs [][]byte) []byte {
	var n int
	for _, s := range strs {
		n += len(s)
	}
	str := make([]byte, 0, n)
	for _, s := range strs {
		str = append(str, s...)
	}
	return str
}
