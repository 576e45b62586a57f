// Package gen renders the boilerplate methods javamate offers to
// generate and plans where they land in the document: replacing an
// existing method found by its signature pattern, or inserting at a
// safe index inside the class body.
package gen

import (
	"regexp"

	"github.com/dhamidi/javamate/java/analyzer"
)

// Signature patterns feed outline.FindMethod, so each match runs from
// the first signature token through the body's opening brace. An
// @Override annotation directly before the signature is folded into
// the match so a replacement swallows it too.

const typeToken = `[\w$.<>\[\], ?]+?`

// ToStringPattern matches a public String toString() declaration.
func ToStringPattern() *regexp.Regexp {
	return regexp.MustCompile(`(?:@Override\s+)?public\s+String\s+toString\s*\(\s*\)\s*\{`)
}

// HashCodePattern matches a public int hashCode() declaration.
func HashCodePattern() *regexp.Regexp {
	return regexp.MustCompile(`(?:@Override\s+)?public\s+int\s+hashCode\s*\(\s*\)\s*\{`)
}

// EqualsPattern matches a public boolean equals(Object ...) declaration.
func EqualsPattern() *regexp.Regexp {
	return regexp.MustCompile(`(?:@Override\s+)?public\s+boolean\s+equals\s*\(\s*(?:final\s+)?Object\s+\w+\s*\)\s*\{`)
}

// AccessorPattern matches the accessor of the given kind for the given
// field, whatever the declared types: existing accessors count even
// when their types disagree with the field, because the user must be
// told about the clash rather than have a duplicate generated.
func AccessorPattern(kind analyzer.AccessorKind, field string) *regexp.Regexp {
	name := regexp.QuoteMeta(kind.MethodName(field))
	switch kind {
	case analyzer.AccessorSetter:
		return regexp.MustCompile(`public\s+void\s+` + name + `\s*\([^)]*\)\s*\{`)
	case analyzer.AccessorWither:
		return regexp.MustCompile(`public\s+` + typeToken + `\s+` + name + `\s*\([^)]*\)\s*\{`)
	default:
		return regexp.MustCompile(`public\s+` + typeToken + `\s+` + name + `\s*\(\s*\)\s*\{`)
	}
}
