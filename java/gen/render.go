package gen

import (
	"strings"

	"github.com/dhamidi/javamate/java/analyzer"
)

// Options controls indentation of rendered methods.
type Options struct {
	// Indent is one indentation unit; four spaces when empty.
	Indent string
	// Depth is the brace-nesting depth of the receiving class, as
	// reported by Class.Depth. Members indent one unit deeper.
	Depth int
}

func (o Options) unit() string {
	if o.Indent == "" {
		return "    "
	}
	return o.Indent
}

// member returns the indentation of a member declaration of the class.
func (o Options) member() string {
	return strings.Repeat(o.unit(), o.Depth+1)
}

var primitives = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true,
}

// writer accumulates rendered lines with a fixed member indentation.
// Every rendered block starts and ends with a newline so it drops
// cleanly into whitespace at an insertion index.
type writer struct {
	sb     strings.Builder
	indent string
}

func newWriter(opts Options) *writer {
	w := &writer{indent: opts.member()}
	w.sb.WriteByte('\n')
	return w
}

func (w *writer) line(depth int, text string) {
	w.sb.WriteString(w.indent)
	for i := 0; i < depth; i++ {
		w.sb.WriteString("    ")
	}
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
}

func (w *writer) String() string {
	return w.sb.String()
}

// ToString renders a toString override concatenating every field.
func ToString(className string, fields []analyzer.Field, opts Options) string {
	w := newWriter(opts)
	w.line(0, "/**")
	w.line(0, " * {@inheritDoc}")
	w.line(0, " */")
	w.line(0, "@Override")
	w.line(0, "public String toString() {")

	var expr strings.Builder
	expr.WriteString(`return "` + className + `[`)
	for i, f := range fields {
		if i > 0 {
			expr.WriteString(`, `)
		}
		expr.WriteString(f.Name + `=" + ` + f.Name + ` + "`)
	}
	expr.WriteString(`]";`)
	w.line(1, expr.String())

	w.line(0, "}")
	return w.String()
}

// HashCode renders a hashCode override over every field.
func HashCode(fields []analyzer.Field, opts Options) string {
	w := newWriter(opts)
	w.line(0, "/**")
	w.line(0, " * {@inheritDoc}")
	w.line(0, " */")
	w.line(0, "@Override")
	w.line(0, "public int hashCode() {")

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	w.line(1, "return Objects.hash("+strings.Join(names, ", ")+");")

	w.line(0, "}")
	return w.String()
}

// Equals renders an equals override comparing every field, with == for
// primitive types and Objects.equals otherwise.
func Equals(className string, fields []analyzer.Field, opts Options) string {
	w := newWriter(opts)
	w.line(0, "/**")
	w.line(0, " * {@inheritDoc}")
	w.line(0, " */")
	w.line(0, "@Override")
	w.line(0, "public boolean equals(Object other) {")
	w.line(1, "if (this == other) {")
	w.line(2, "return true;")
	w.line(1, "}")
	w.line(1, "if (!(other instanceof "+className+")) {")
	w.line(2, "return false;")
	w.line(1, "}")
	w.line(1, className+" that = ("+className+") other;")

	if len(fields) == 0 {
		w.line(1, "return true;")
	} else {
		var expr strings.Builder
		expr.WriteString("return ")
		for i, f := range fields {
			if i > 0 {
				expr.WriteString(" && ")
			}
			if primitives[f.Type] {
				expr.WriteString(f.Name + " == that." + f.Name)
			} else {
				expr.WriteString("Objects.equals(" + f.Name + ", that." + f.Name + ")")
			}
		}
		expr.WriteString(";")
		w.line(1, expr.String())
	}

	w.line(0, "}")
	return w.String()
}

// Accessor renders a getter, setter, or wither for one field. The
// class name shows up in the javadoc and as the wither's return type.
func Accessor(className string, kind analyzer.AccessorKind, field analyzer.Field, opts Options) string {
	name := kind.MethodName(field.Name)
	w := newWriter(opts)

	switch kind {
	case analyzer.AccessorGetter:
		w.line(0, "/**")
		w.line(0, " * Returns the "+field.Name+" of this "+className+".")
		w.line(0, " *")
		w.line(0, " * @return the "+field.Name)
		w.line(0, " */")
		w.line(0, "public "+field.Type+" "+name+"() {")
		w.line(1, "return this."+field.Name+";")
		w.line(0, "}")

	case analyzer.AccessorSetter:
		w.line(0, "/**")
		w.line(0, " * Sets the "+field.Name+" of this "+className+".")
		w.line(0, " *")
		w.line(0, " * @param "+field.Name+" the new value")
		w.line(0, " */")
		w.line(0, "public void "+name+"("+field.Type+" "+field.Name+") {")
		w.line(1, "this."+field.Name+" = "+field.Name+";")
		w.line(0, "}")

	case analyzer.AccessorWither:
		w.line(0, "/**")
		w.line(0, " * Sets the "+field.Name+" and returns this "+className+".")
		w.line(0, " *")
		w.line(0, " * @param "+field.Name+" the new value")
		w.line(0, " * @return this instance")
		w.line(0, " */")
		w.line(0, "public "+className+" "+name+"("+field.Type+" "+field.Name+") {")
		w.line(1, "this."+field.Name+" = "+field.Name+";")
		w.line(1, "return this;")
		w.line(0, "}")

	default:
		return ""
	}

	return w.String()
}
