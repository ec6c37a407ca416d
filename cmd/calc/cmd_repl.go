package main

import (
	"fmt"

	"github.com/dhamidi/calc/repl"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newReplCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}
}

func runRepl(cmd *cobra.Command, opts *globalOptions) error {
	log := commonlog.GetLogger("calc.repl")

	term, err := repl.NewTerminal(opts.cfg.REPL.HistoryFile)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		if err := term.Close(); err != nil {
			log.Warningf("close terminal: %s", err)
		}
	}()

	session := &repl.Session{
		Reader:  term,
		History: term,
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
		Prompt:  opts.cfg.REPL.Prompt,
		Eval:    opts.grammar().Eval,
		Logger:  log,
	}
	return session.Run()
}
