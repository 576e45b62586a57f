package main

import (
	"github.com/dhamidi/javamate/java/assist"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := assist.NewServer(version)
			return server.RunStdio()
		},
	}
}
