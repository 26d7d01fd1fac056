package xpl

// skipComment consumes a '...'-delimited span starting at pos. A comment is
// opened by a single quote and runs until the next single quote or
// end-of-input; both delimiters are consumed. A comment may contain any
// bytes except the closing quote. Per spec.md's open question on
// unterminated spans, the scan is bounded by len(text): a comment with no
// closing quote consumes to end-of-input and is tolerated, never walking
// past the buffer.
func skipComment(text string, pos int) (newPos int, ok bool) {
	if pos >= len(text) || text[pos] != squote {
		return pos, false
	}
	pos++ // opening quote
	for pos < len(text) && text[pos] != squote {
		pos++
	}
	if pos < len(text) {
		pos++ // closing quote
	}
	return pos, true
}

// skipMeaningless loops: while the cursor is on a blank or a single quote,
// trim blanks, then attempt a comment, then trim blanks again. It returns
// the advanced position.
func skipMeaningless(text string, pos int) int {
	for pos < len(text) && (isBlank(text[pos]) || text[pos] == squote) {
		pos, _ = trim(text, pos)
		pos, _ = skipComment(text, pos)
		pos, _ = trim(text, pos)
	}
	return pos
}
