// Package outline is a heuristic structural scanner for Java source
// text. It locates comment spans, tracks brace nesting while skipping
// braces inside comments, reconstructs the nested class hierarchy from
// flat class-header matches, and derives safe text intervals for
// inserting generated members or replacing an existing method together
// with its javadoc and surrounding whitespace.
//
// There is no grammar here on purpose. The scanner stays correct
// enough for interactive code generation while remaining a handful of
// linear passes: it does not distinguish comment or brace markers
// inside string and character literals, it does not understand
// generics, and a "class" token inside a comment or string is picked
// up as a real header. Callers confirm every destructive edit with the
// user before applying it.
//
// All operations work on one immutable full-document snapshot. An
// outline is built fresh per request and discarded; any edit to the
// document invalidates it.
package outline
