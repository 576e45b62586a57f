package outline

// MatchBrace returns the index of the close brace matching the open
// brace at open, scanning forward from open+1. Braces inside comments
// do not count: when the scan reaches a comment's start it jumps
// directly to the comment's end. Both the scan index and the comment
// cursor only ever move forward.
//
// When no matching brace exists before the end of the text, MatchBrace
// returns open unchanged. Callers must treat a result equal to the
// input as "not found".
func MatchBrace(text string, open int, comments []Comment) int {
	depth := 1
	next := 0

	for i := open + 1; i < len(text); i++ {
		for next < len(comments) && comments[next].Span.End < i {
			next++
		}
		if next < len(comments) && comments[next].Span.Start <= i {
			i = comments[next].Span.End
			next++
			continue
		}

		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return open
}
