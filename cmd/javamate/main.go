package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "javamate",
		Short: "Boilerplate generation toolkit for Java sources",
	}

	rootCmd.AddCommand(newOutlineCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
