package xpl

// Byte classes used to delimit tokens. A separator is any byte that ends a
// bareword: whitespace, comma, exclamation, colon, or either quote.
const (
	squote byte = '\''
	dquote byte = '"'
	comma  byte = ','
	excl   byte = '!'
	colon  byte = ':'
)

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isSeparator(b byte) bool {
	switch b {
	case squote, dquote, comma, excl, colon:
		return true
	default:
		return isBlank(b)
	}
}

// trim advances pos past consecutive blank bytes in text, returning the new
// position and the count advanced.
func trim(text string, pos int) (newPos, n int) {
	start := pos
	for pos < len(text) && isBlank(text[pos]) {
		pos++
	}
	return pos, pos - start
}
