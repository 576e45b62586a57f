package outline

import "regexp"

// classHeader matches a class declaration header from the class
// keyword through the name and any extends/implements clause, stopping
// just before the body's opening brace. A class token inside a string
// literal or comment matches too; the builder keeps that leniency.
var classHeader = regexp.MustCompile(`\bclass\s+([A-Za-z_$][A-Za-z0-9_$]*)[^{};]*\{`)

// ClassMatch is one raw class-header hit: the class name and the
// header span, excluding the body-opening brace that immediately
// follows it.
type ClassMatch struct {
	Name   string
	Header Interval
}

// FindClassHeaders returns every class-header match in text, ordered
// by start index.
func FindClassHeaders(text string) []ClassMatch {
	var matches []ClassMatch
	for _, loc := range classHeader.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, ClassMatch{
			Name: text[loc[2]:loc[3]],
			// loc[1] is one past the opening brace; the header
			// span stops just before it.
			Header: Interval{Start: loc[0], End: loc[1] - 2},
		})
	}
	return matches
}

// BuildForest turns a flat ordered list of class-header matches into a
// class forest. For each match the body is resolved by brace matching
// from the character after the header (the opening brace); the
// immediately following matches whose start lies within that body
// become the children, built recursively over that contiguous sublist.
//
// Correctly brace-matched class bodies cannot partially overlap, so
// containment of the header start is the only nesting test needed.
// A header whose opening brace has no match is dropped as spurious.
func BuildForest(text string, comments []Comment, matches []ClassMatch) ([]*Class, error) {
	var roots []*Class

	for i := 0; i < len(matches); {
		m := matches[i]
		open := m.Header.End + 1
		close := MatchBrace(text, open, comments)
		if close == open {
			i++
			continue
		}
		body := Interval{Start: open, End: close}
		node := newClass(m.Name, m.Header, body, comments)

		j := i + 1
		for j < len(matches) && body.Includes(matches[j].Header.Start) {
			j++
		}
		children, err := BuildForest(text, comments, matches[i+1:j])
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if err := node.attach(child); err != nil {
				return nil, err
			}
		}

		roots = append(roots, node)
		i = j
	}

	return roots, nil
}

// File is the structural outline of one full-document snapshot. It is
// built fresh per parse and holds no reference to anything mutable:
// any edit to the underlying document invalidates the outline, and the
// caller must parse again.
type File struct {
	Text     string
	Comments []Comment
	Classes  []*Class
}

// Parse scans text for comments and class headers and assembles the
// class forest.
func Parse(text string) (*File, error) {
	comments := ScanComments(text)
	classes, err := BuildForest(text, comments, FindClassHeaders(text))
	if err != nil {
		return nil, err
	}
	return &File{Text: text, Comments: comments, Classes: classes}, nil
}

// ClassAt returns the innermost class containing index, or nil when
// index falls outside every class.
func (f *File) ClassAt(index int) *Class {
	for _, c := range f.Classes {
		if hit := c.EnclosingClass(index); hit != nil {
			return hit
		}
	}
	return nil
}
