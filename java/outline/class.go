package outline

import "fmt"

// Class is one node in the class forest of a document. Signature
// covers the header text (from the class keyword up to, but not
// including, the body's opening brace); Body runs from the opening
// brace to its matching close brace.
//
// A parent exclusively owns its children; the parent link is a
// non-owning back-reference used for scope and lookup only.
type Class struct {
	Name      string
	Signature Interval
	Body      Interval

	comments []Comment
	children []*Class
	parent   *Class
}

func newClass(name string, signature, body Interval, comments []Comment) *Class {
	c := &Class{
		Name:      name,
		Signature: signature,
		Body:      body,
	}
	for _, comment := range comments {
		if comment.Span.LiesWithin(body) {
			c.comments = append(c.comments, comment)
		}
	}
	return c
}

// Interval returns the union of the signature and body intervals.
func (c *Class) Interval() Interval {
	return c.Signature.Union(c.Body)
}

// Comments returns the document comments lying within the class body,
// ordered by start index.
func (c *Class) Comments() []Comment {
	return c.comments
}

// Children returns the inner classes in source order.
func (c *Class) Children() []*Class {
	return c.children
}

// Parent returns the enclosing class, or nil for a top-level class.
func (c *Class) Parent() *Class {
	return c.parent
}

// attach adopts child as the next inner class. A node may be attached
// to at most one parent, and its interval must lie within the body of
// the adopting class.
func (c *Class) attach(child *Class) error {
	if child.parent != nil {
		return fmt.Errorf("class %s already attached to %s", child.Name, child.parent.Name)
	}
	if !child.Interval().LiesWithin(c.Body) {
		return fmt.Errorf("class %s at %v is not nested in body %v of %s",
			child.Name, child.Interval(), c.Body, c.Name)
	}
	child.parent = c
	c.children = append(c.children, child)
	return nil
}

// EnclosingClass returns the innermost class whose interval contains
// index, or nil when index falls outside this class entirely. Children
// are consulted in source order before falling back to the receiver;
// sibling bodies never overlap, so at most one child matches.
func (c *Class) EnclosingClass(index int) *Class {
	if !c.Interval().Includes(index) {
		return nil
	}
	for _, child := range c.children {
		if hit := child.EnclosingClass(index); hit != nil {
			return hit
		}
	}
	return c
}

// Depth returns the brace-nesting depth of the class: 0 for a
// top-level class, one more for each enclosing class. This drives
// indentation of generated code, not Java name scoping.
func (c *Class) Depth() int {
	if c.parent == nil {
		return 0
	}
	return 1 + c.parent.Depth()
}

// InsertIndex picks a safe index for inserting generated members,
// preferring the probed index and falling back to the end of the class
// body. The probed index is rejected when it is outside the body, on a
// non-whitespace character, inside a comment, or nested inside a
// method or inner-class body.
//
// A whitespace position inside a multi-line method signature is not
// detected separately and may still be chosen; the result is a
// best-effort heuristic.
func (c *Class) InsertIndex(text string, index int) int {
	if !c.Body.Includes(index) {
		return c.Body.End
	}
	if index >= len(text) || !isSpace(text[index]) {
		return c.Body.End
	}
	for _, comment := range c.comments {
		if comment.Span.Includes(index) {
			return c.Body.End
		}
	}
	if braceDepth(text, index, c.Body.End, c.comments) != 0 {
		return c.Body.End
	}
	return index
}

// braceDepth counts the net brace depth over [from, to), skipping
// comment spans the same way MatchBrace does. A nonzero result means
// from sits inside a block nested below to's level.
func braceDepth(text string, from, to int, comments []Comment) int {
	depth := 0
	next := 0
	for i := from; i < to && i < len(text); i++ {
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
		}
	}
	return depth
}
