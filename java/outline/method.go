package outline

import "regexp"

// FindMethod locates an existing method of class whose signature
// matches pattern and returns the interval covering its full span: the
// preceding javadoc comment when one directly precedes the signature,
// the leading whitespace, the signature and body, and the trailing
// whitespace up to the last newline before the next non-whitespace
// character.
//
// The pattern's match must include the method body's opening brace as
// its final character. Every match in the document is considered, but
// only matches whose innermost enclosing class is class itself (by
// node identity, never by name) qualify; a same-named method in an
// inner or outer class is skipped. Only the first qualifying match is
// used: duplicate signatures get no special handling.
//
// The second result is false when no qualifying match exists or the
// body's closing brace cannot be found.
func FindMethod(text string, pattern *regexp.Regexp, class *Class) (Interval, bool) {
	if class == nil {
		return Interval{}, false
	}

	root := class
	for root.parent != nil {
		root = root.parent
	}

	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if root.EnclosingClass(start) != class {
			continue
		}

		open := end - 1
		if open < 0 || open >= len(text) || text[open] != '{' {
			continue
		}
		close := MatchBrace(text, open, class.comments)
		if close == open {
			return Interval{}, false
		}

		left := start
		if doc, ok := precedingDoc(text, class.comments, start); ok {
			left = doc.Start
		}

		return Interval{
			Start: IncludeLeadingWhitespace(text, left),
			End:   IncludeTrailingWhitespace(text, close),
		}, true
	}

	return Interval{}, false
}

// precedingDoc returns the span of the javadoc comment directly
// preceding index: the last comment in comments ending before index,
// accepted only when it is a doc comment and nothing but whitespace
// separates it from index.
func precedingDoc(text string, comments []Comment, index int) (Interval, bool) {
	var last *Comment
	for i := range comments {
		if comments[i].Span.End < index {
			last = &comments[i]
		}
	}
	if last == nil || last.Kind != CommentDoc {
		return Interval{}, false
	}
	for i := last.Span.End + 1; i < index; i++ {
		if !isSpace(text[i]) {
			return Interval{}, false
		}
	}
	return last.Span, true
}
