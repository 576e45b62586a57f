package main

import (
	"fmt"

	"github.com/dhamidi/javamate/java/analyzer"
	"github.com/dhamidi/javamate/project"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	var accessor string

	cmd := &cobra.Command{
		Use:   "fields <class>",
		Short: "List the fields of a compiled class reachable by an accessor",
		Long: `Fields lists each accessible field of a compiled class with its type and
whether an accessor of the given kind already exists. With an analyzer
classpath configured the ClassAnalyzer helper runs on the JVM; otherwise
the compiled class files are read directly from the build output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadFrom(".")
			if err != nil {
				return err
			}

			kind := analyzer.AccessorKindOf(accessor)
			if kind == analyzer.AccessorNone {
				return fmt.Errorf("unknown accessor prefix: %s", accessor)
			}

			source := analyzer.SourceFor(cfg, ".")
			report, err := source.AccessibleFields(cmd.Context(), args[0], kind)
			if err != nil {
				return err
			}

			fmt.Println(report.ClassName)
			for _, f := range report.Fields {
				fmt.Printf("%s %s %s\n", f.Type, f.Name, f.Availability)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&accessor, "accessor", "a", "get", "accessor prefix (get, set, with)")

	return cmd
}
