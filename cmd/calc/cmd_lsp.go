package main

import (
	"github.com/dhamidi/calc/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for .calc files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, opts.grammar())
			return server.RunStdio()
		},
	}
}
