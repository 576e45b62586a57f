package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/javamate/java/outline"
	"github.com/spf13/cobra"
)

type classJSON struct {
	Name      string      `json:"name"`
	Depth     int         `json:"depth"`
	Signature [2]int      `json:"signature"`
	Body      [2]int      `json:"body"`
	Children  []classJSON `json:"children,omitempty"`
}

func classesToJSON(classes []*outline.Class) []classJSON {
	var out []classJSON
	for _, c := range classes {
		out = append(out, classJSON{
			Name:      c.Name,
			Depth:     c.Depth(),
			Signature: [2]int{c.Signature.Start, c.Signature.End},
			Body:      [2]int{c.Body.Start, c.Body.End},
			Children:  classesToJSON(c.Children()),
		})
	}
	return out
}

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <file>",
		Short: "Dump the class structure of a .java file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			file, err := outline.Parse(string(data))
			if err != nil {
				return fmt.Errorf("outline %s: %w", args[0], err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(classesToJSON(file.Classes))
		},
	}
}
