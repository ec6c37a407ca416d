package main

import (
	"fmt"
	"reflect"

	"github.com/dhamidi/calc/calc"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var startProduction string
	var verifyOnly bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print and verify the EBNF grammar of the expression language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := calc.VerifyGrammar(startProduction); err != nil {
				printErrors(cmd, err)
				return fmt.Errorf("grammar does not verify from %q", startProduction)
			}

			if !verifyOnly {
				fmt.Fprint(cmd.OutOrStdout(), calc.GrammarSource())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", calc.ProductionExpression, "start production for verification")
	cmd.Flags().BoolVar(&verifyOnly, "verify", false, "only verify, do not print the grammar")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(out, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(out, err)
	}
}
