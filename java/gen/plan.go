package gen

import (
	"regexp"

	"github.com/dhamidi/javamate/java/outline"
)

// Edit is the in-process contract between the generation core and the
// editing layer: either a replacement of Span by Text, or an insertion
// of Text at At. The editing layer is expected to get the user's
// confirmation before applying a replacement.
type Edit struct {
	Replace bool
	Span    outline.Interval // meaningful when Replace
	At      int              // meaningful when !Replace
	Text    string
}

// Plan decides where body lands in text for the given class. When a
// method matching pattern already exists in the class, the edit
// replaces its full span (javadoc, signature, body, surrounding
// whitespace); otherwise the edit inserts at the class's safe
// insertion index closest to cursor.
func Plan(text string, class *outline.Class, cursor int, pattern *regexp.Regexp, body string) Edit {
	if span, ok := outline.FindMethod(text, pattern, class); ok {
		return Edit{Replace: true, Span: span, Text: body}
	}
	return Edit{At: class.InsertIndex(text, cursor), Text: body}
}

// Apply returns the document text with the edit carried out.
func (e Edit) Apply(text string) string {
	if e.Replace {
		return text[:e.Span.Start] + e.Text + text[e.Span.End+1:]
	}
	return text[:e.At] + e.Text + text[e.At:]
}
