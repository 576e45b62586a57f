// Package classfile reads the parts of a compiled Java class file
// needed to list fields and accessor methods: the constant pool, the
// superclass link, and the field and method tables. Attributes and
// method bodies are skipped.
package classfile

import "strings"

// AccessFlags holds the access_flags bits of a class, field, or
// method.
type AccessFlags uint16

const (
	AccPublic    AccessFlags = 0x0001
	AccPrivate   AccessFlags = 0x0002
	AccProtected AccessFlags = 0x0004
	AccStatic    AccessFlags = 0x0008
	AccFinal     AccessFlags = 0x0010
)

func (f AccessFlags) IsPublic() bool    { return f&AccPublic != 0 }
func (f AccessFlags) IsPrivate() bool   { return f&AccPrivate != 0 }
func (f AccessFlags) IsProtected() bool { return f&AccProtected != 0 }
func (f AccessFlags) IsStatic() bool    { return f&AccStatic != 0 }
func (f AccessFlags) IsFinal() bool     { return f&AccFinal != 0 }

// IsPackagePrivate reports whether none of the visibility bits is set.
func (f AccessFlags) IsPackagePrivate() bool {
	return f&(AccPublic|AccPrivate|AccProtected) == 0
}

// Field is one entry of the class's field table.
type Field struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
}

// Method is one entry of the class's method table.
type Method struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
}

// Class is the parsed skeleton of a compiled class.
type Class struct {
	AccessFlags AccessFlags
	// Name is the internal class name, e.g. "com/example/Person".
	Name string
	// SuperName is the internal name of the superclass; empty for
	// java/lang/Object.
	SuperName string
	Fields    []Field
	Methods   []Method
}

// Package returns the internal package prefix of the class, e.g.
// "com/example" for "com/example/Person". Classes in the default
// package return "".
func (c *Class) Package() string {
	i := strings.LastIndexByte(c.Name, '/')
	if i < 0 {
		return ""
	}
	return c.Name[:i]
}

// SimpleName returns the class name without package and enclosing
// class prefixes.
func (c *Class) SimpleName() string {
	name := c.Name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '$'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// MethodsNamed returns all methods with the given name, covering
// overloads.
func (c *Class) MethodsNamed(name string) []Method {
	var out []Method
	for _, m := range c.Methods {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}
