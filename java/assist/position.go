package assist

import "strings"

// lineIndex maps between byte offsets and line/character positions for
// one document snapshot. Characters are counted in bytes, matching how
// the outline addresses the document.
type lineIndex struct {
	// starts[i] is the byte offset of the first character of line i.
	starts []int
	length int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts, length: len(text)}
}

// Offset converts a 0-based line/character pair to a byte offset,
// clamped to the document.
func (ix *lineIndex) Offset(line, character int) int {
	if line < 0 {
		return 0
	}
	if line >= len(ix.starts) {
		return ix.length
	}
	offset := ix.starts[line] + character
	lineEnd := ix.length
	if line+1 < len(ix.starts) {
		lineEnd = ix.starts[line+1] - 1
	}
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}

// Position converts a byte offset to a 0-based line/character pair,
// clamped to the document.
func (ix *lineIndex) Position(offset int) (line, character int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > ix.length {
		offset = ix.length
	}
	line = len(ix.starts) - 1
	for i := 1; i < len(ix.starts); i++ {
		if ix.starts[i] > offset {
			line = i - 1
			break
		}
	}
	return line, offset - ix.starts[line]
}

// packageName pulls the package declaration out of the document, or
// returns "" for the default package.
func packageName(text string) string {
	const keyword = "package "
	i := strings.Index(text, keyword)
	if i < 0 {
		return ""
	}
	rest := text[i+len(keyword):]
	end := strings.IndexByte(rest, ';')
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
