package outline

// isSpace matches the whitespace the scanner cares about when
// widening intervals. Matches the lexer's notion of whitespace.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// IncludeLeadingWhitespace walks backward from index over whitespace
// and returns the index of the first whitespace character in that run.
// When index is preceded by a non-whitespace character the index itself
// is returned; the result is floored at 0.
func IncludeLeadingWhitespace(text string, index int) int {
	i := index - 1
	for i >= 0 && isSpace(text[i]) {
		i--
	}
	return i + 1
}

// IncludeTrailingWhitespace walks forward from index over whitespace
// and returns the index of the last newline seen before the first
// non-whitespace character. Stopping at the newline rather than the
// next non-whitespace character keeps the following line's indentation
// intact. When no newline occurs before the run ends, index itself is
// returned; when only whitespace remains, the end of the text is
// returned.
func IncludeTrailingWhitespace(text string, index int) int {
	newline := index
	for i := index + 1; i < len(text); i++ {
		if !isSpace(text[i]) {
			return newline
		}
		if text[i] == '\n' {
			newline = i
		}
	}
	if len(text) == 0 {
		return index
	}
	return len(text) - 1
}
