package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dhamidi/javamate/java/analyzer"
	"github.com/dhamidi/javamate/java/gen"
	"github.com/dhamidi/javamate/java/outline"
	"github.com/dhamidi/javamate/project"
	"github.com/spf13/cobra"
)

// parseFieldFlags turns repeated --field name=Type flags into fields.
func parseFieldFlags(flags []string) ([]analyzer.Field, error) {
	var fields []analyzer.Field
	for _, f := range flags {
		name, typ, ok := strings.Cut(f, "=")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("malformed field %q, want name=Type", f)
		}
		fields = append(fields, analyzer.Field{Name: name, Type: typ})
	}
	return fields, nil
}

func newGenerateCmd() *cobra.Command {
	var kind string
	var at int
	var fieldFlags []string

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate a boilerplate method into a .java file",
		Long: `Generate plans a toString, hashCode, equals, or accessor method for the
class at the given offset and prints the rewritten document. An existing
method with a matching signature is replaced together with its javadoc.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}
			text := string(data)

			cfg, err := project.LoadFrom(".")
			if err != nil {
				return err
			}

			fields, err := parseFieldFlags(fieldFlags)
			if err != nil {
				return err
			}

			file, err := outline.Parse(text)
			if err != nil {
				return fmt.Errorf("outline %s: %w", args[0], err)
			}
			class := file.ClassAt(at)
			if class == nil {
				return fmt.Errorf("no class at offset %d", at)
			}

			opts := gen.Options{Indent: cfg.Indent, Depth: class.Depth()}

			var pattern *regexp.Regexp
			var body string
			switch kind {
			case "tostring":
				pattern = gen.ToStringPattern()
				body = gen.ToString(class.Name, fields, opts)
			case "hashcode":
				pattern = gen.HashCodePattern()
				body = gen.HashCode(fields, opts)
			case "equals":
				pattern = gen.EqualsPattern()
				body = gen.Equals(class.Name, fields, opts)
			case "getter", "setter", "wither":
				var accessor analyzer.AccessorKind
				switch kind {
				case "getter":
					accessor = analyzer.AccessorGetter
				case "setter":
					accessor = analyzer.AccessorSetter
				case "wither":
					accessor = analyzer.AccessorWither
				}
				if len(fields) == 0 {
					return fmt.Errorf("%s generation needs at least one --field", kind)
				}
				for _, f := range fields {
					body += gen.Accessor(class.Name, accessor, f, opts)
				}
				pattern = gen.AccessorPattern(accessor, fields[0].Name)
			default:
				return fmt.Errorf("unknown kind: %s", kind)
			}

			edit := gen.Plan(text, class, at, pattern, body)
			fmt.Print(edit.Apply(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "tostring", "method kind (tostring, hashcode, equals, getter, setter, wither)")
	cmd.Flags().IntVar(&at, "at", 0, "cursor offset inside the target class")
	cmd.Flags().StringArrayVar(&fieldFlags, "field", nil, "field as name=Type (repeatable)")

	return cmd
}
