package assist

import (
	"github.com/dhamidi/javamate/java/analyzer"
	"github.com/dhamidi/javamate/java/gen"
	"github.com/dhamidi/javamate/java/outline"
	"github.com/dhamidi/javamate/project"
)

// Action is one generation offer for the class under the cursor.
type Action struct {
	Title string
	Edit  gen.Edit
}

// planActions outlines the document and assembles the generation
// actions available at offset. A nil report (no compiled class to
// reflect on) still yields override skeletons over an empty field
// list, but no accessor actions.
func planActions(text string, offset int, cfg *project.Config, report *analyzer.Report) ([]Action, error) {
	file, err := outline.Parse(text)
	if err != nil {
		return nil, err
	}
	class := file.ClassAt(offset)
	if class == nil {
		return nil, nil
	}

	var fields []analyzer.Field
	if report != nil {
		fields = report.Fields
	}
	opts := gen.Options{Indent: cfg.Indent, Depth: class.Depth()}

	var actions []Action
	add := func(name string, plan gen.Edit) {
		title := "Generate " + name
		if plan.Replace {
			title = "Replace " + name
		}
		actions = append(actions, Action{Title: title, Edit: plan})
	}

	add("toString()", gen.Plan(text, class, offset, gen.ToStringPattern(),
		gen.ToString(class.Name, fields, opts)))
	add("hashCode()", gen.Plan(text, class, offset, gen.HashCodePattern(),
		gen.HashCode(fields, opts)))
	add("equals()", gen.Plan(text, class, offset, gen.EqualsPattern(),
		gen.Equals(class.Name, fields, opts)))

	for _, prefix := range cfg.Accessors {
		kind := analyzer.AccessorKindOf(prefix)
		if kind == analyzer.AccessorNone {
			continue
		}
		if body := accessorBodies(text, class, kind, fields, opts); body != "" {
			actions = append(actions, Action{
				Title: "Generate " + accessorTitle(kind),
				Edit:  gen.Edit{At: class.InsertIndex(text, offset), Text: body},
			})
		}
	}

	return actions, nil
}

// accessorBodies renders the accessors of one kind for every field
// that does not have one yet, neither in the compiled class hierarchy
// nor in the current document text.
func accessorBodies(text string, class *outline.Class, kind analyzer.AccessorKind, fields []analyzer.Field, opts gen.Options) string {
	var body string
	for _, f := range fields {
		if f.Availability != analyzer.AvailabilityNone {
			continue
		}
		if _, ok := outline.FindMethod(text, gen.AccessorPattern(kind, f.Name), class); ok {
			continue
		}
		body += gen.Accessor(class.Name, kind, f, opts)
	}
	return body
}

func accessorTitle(kind analyzer.AccessorKind) string {
	switch kind {
	case analyzer.AccessorGetter:
		return "getters"
	case analyzer.AccessorSetter:
		return "setters"
	case analyzer.AccessorWither:
		return "withers"
	}
	return "accessors"
}
