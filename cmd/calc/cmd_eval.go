package main

import (
	"fmt"

	"github.com/dhamidi/calc/calc"
	"github.com/dhamidi/calc/workspace"
	"github.com/spf13/cobra"
)

func newEvalCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate expressions and print their values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := opts.grammar()
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			failed := 0
			for _, expr := range args {
				v, err := g.Eval(expr)
				if err != nil {
					fmt.Fprintf(errOut, "%s: %s\n", expr, workspace.Message(err))
					failed++
					continue
				}
				fmt.Fprintln(out, calc.Format(v))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}
			return nil
		},
	}
}
