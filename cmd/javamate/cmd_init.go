package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/javamate/project"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default .javamate.yaml",
		Long: `Write a default configuration file.

If a directory is provided, the file is created there. Otherwise it is
created in the current directory. The project type is detected from
build-system marker files (pom.xml, build.gradle).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory: %w", err)
				}
			}

			path := filepath.Join(dir, project.ConfigFile)
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("%s already exists\n", path)
				return nil
			}

			cfg := project.Default()
			cfg.Type = project.DetectType(dir)
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Printf("Created %s (project type: %s)\n", path, cfg.Type)
			return nil
		},
	}
}
