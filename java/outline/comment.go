package outline

import "strings"

// CommentKind distinguishes the three Java comment forms.
type CommentKind int

const (
	// CommentLine is a // comment running to the end of the line.
	CommentLine CommentKind = iota
	// CommentBlock is a /* ... */ comment.
	CommentBlock
	// CommentDoc is a documentation comment opening with /**.
	CommentDoc
)

func (k CommentKind) String() string {
	switch k {
	case CommentLine:
		return "line"
	case CommentBlock:
		return "block"
	case CommentDoc:
		return "doc"
	}
	return "unknown"
}

// Comment is a single comment span found in a document.
type Comment struct {
	Kind CommentKind
	Span Interval
}

// ScanComments locates every comment in text in a single left-to-right
// pass and returns them ordered by start index.
//
// Comment markers inside string and character literals are not
// recognized as literals: a // or /* inside a string is picked up as a
// comment start. Callers confirm destructive edits with the user, so
// this leniency is acceptable.
func ScanComments(text string) []Comment {
	var comments []Comment

	for i := 0; i < len(text)-1; i++ {
		if text[i] != '/' {
			continue
		}
		switch text[i+1] {
		case '/':
			end := len(text) - 1
			if nl := strings.IndexByte(text[i+2:], '\n'); nl >= 0 {
				end = i + 2 + nl
			}
			comments = append(comments, Comment{
				Kind: CommentLine,
				Span: Interval{Start: i, End: end},
			})
			i = end
		case '*':
			kind := CommentBlock
			if i+2 < len(text) && text[i+2] == '*' {
				kind = CommentDoc
			}
			// An unterminated trailing comment ends at the last
			// probed index instead of failing.
			end := len(text) - 1
			if close := strings.Index(text[i+2:], "*/"); close >= 0 {
				end = i + 2 + close + 1
			}
			comments = append(comments, Comment{
				Kind: kind,
				Span: Interval{Start: i, End: end},
			})
			i = end
		}
	}

	return comments
}
