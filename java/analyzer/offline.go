package analyzer

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/javamate/classfile"
)

// Offline lists accessible fields by reading compiled class files
// straight from the classpath, for projects without the ClassAnalyzer
// helper. Visibility rules match the helper: static fields are
// skipped, private ancestor fields are invisible, package-private
// ancestor fields are visible only from the same package.
type Offline struct {
	// Entries are classpath entries: class directories or jar files.
	Entries []string

	mu    sync.Mutex
	cache map[string]*classfile.Class
}

// AccessibleFields walks className and its loadable ancestors and
// reports every field an accessor of the given kind could target.
// The walk stops at the first superclass not present on the entries,
// so fields inherited from library classes outside the classpath are
// not reported.
func (o *Offline) AccessibleFields(ctx context.Context, className string, kind AccessorKind) (*Report, error) {
	target, err := o.load(strings.ReplaceAll(className, ".", "/"))
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", className, err)
	}

	report := &Report{ClassName: target.SimpleName()}
	for current := target; current != nil; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, f := range current.Fields {
			if !o.fieldVisible(f, current, target) {
				continue
			}
			if kind.RequiresModifiableField() && f.AccessFlags.IsFinal() {
				continue
			}
			report.Fields = append(report.Fields, Field{
				Name:         f.Name,
				Type:         classfile.SimpleTypeName(f.Descriptor),
				Availability: o.availability(target, f, kind),
			})
		}
		if current.SuperName == "" {
			break
		}
		next, err := o.load(current.SuperName)
		if err != nil {
			break
		}
		current = next
	}
	return report, nil
}

func (o *Offline) fieldVisible(f classfile.Field, owner, target *classfile.Class) bool {
	if f.AccessFlags.IsStatic() {
		return false
	}
	if owner.Name == target.Name {
		return true
	}
	if f.AccessFlags.IsPrivate() {
		return false
	}
	if f.AccessFlags.IsPublic() || f.AccessFlags.IsProtected() {
		return true
	}
	return owner.Package() == target.Package()
}

// availability looks for the accessor method the way the helper does:
// any declaration in the target class counts, so the user learns about
// clashing non-public signatures too; in ancestors only public methods
// count, since only those are inherited callable.
func (o *Offline) availability(target *classfile.Class, f classfile.Field, kind AccessorKind) Availability {
	if kind == AccessorNone {
		return AvailabilityNone
	}
	name := kind.MethodName(f.Name)

	for _, m := range target.MethodsNamed(name) {
		if accessorParamsMatch(m, f, kind) {
			return AvailabilityCurrentClass
		}
	}

	current := target
	for current.SuperName != "" {
		next, err := o.load(current.SuperName)
		if err != nil {
			break
		}
		current = next
		for _, m := range current.MethodsNamed(name) {
			if m.AccessFlags.IsPublic() && accessorParamsMatch(m, f, kind) {
				return AvailabilityAncestor
			}
		}
	}
	return AvailabilityNone
}

// accessorParamsMatch checks the parameter list only: getters take no
// argument, setters and withers take exactly the field's type.
func accessorParamsMatch(m classfile.Method, f classfile.Field, kind AccessorKind) bool {
	params := classfile.ParamDescriptors(m.Descriptor)
	if kind.RequiresModifiableField() {
		return len(params) == 1 && params[0] == f.Descriptor
	}
	return len(params) == 0
}

// load resolves an internal class name against the entries, caching
// parsed classes for the ancestor walks.
func (o *Offline) load(internalName string) (*classfile.Class, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cache == nil {
		o.cache = map[string]*classfile.Class{}
	}
	if cf, ok := o.cache[internalName]; ok {
		return cf, nil
	}

	for _, entry := range o.Entries {
		var cf *classfile.Class
		var err error
		if strings.HasSuffix(entry, ".jar") {
			cf, err = loadFromJar(entry, internalName)
		} else {
			cf, err = loadFromDir(entry, internalName)
		}
		if err == nil {
			o.cache[internalName] = cf
			return cf, nil
		}
	}
	return nil, fmt.Errorf("class %s not found on %s", internalName, strings.Join(o.Entries, string(os.PathListSeparator)))
}

func loadFromDir(dir, internalName string) (*classfile.Class, error) {
	return classfile.ParseFile(filepath.Join(dir, filepath.FromSlash(internalName)+".class"))
}

func loadFromJar(jar, internalName string) (*classfile.Class, error) {
	r, err := zip.OpenReader(jar)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := r.Open(internalName + ".class")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return classfile.Parse(f)
}
