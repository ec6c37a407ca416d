package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhamidi/calc/calc"
	"github.com/dhamidi/calc/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var watch bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file|dir]...",
		Short: "Evaluate every expression line of .calc files",
		Long: `Evaluate every expression line of .calc files.

Blank lines and lines starting with # are skipped. Directories are searched
recursively. The exit status is non-zero if any line fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes exactly one directory")
				}
				if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
					return fmt.Errorf("--watch takes a directory, %s is a file", args[0])
				}
			}

			g := opts.grammar()
			out := cmd.OutOrStdout()

			var workspaces []*workspace.Workspace
			failed := 0
			for _, path := range args {
				ws, err := loadWorkspace(path, g)
				if err != nil {
					return err
				}
				workspaces = append(workspaces, ws)
				for _, doc := range ws.Files() {
					failed += printDocument(out, doc, quiet)
				}
			}

			if watch {
				return watchWorkspace(cmd, workspaces[0], quiet)
			}

			if failed > 0 {
				return fmt.Errorf("%d lines failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-check files when they change")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failing lines")

	return cmd
}

func loadWorkspace(path string, g *calc.Grammar) (*workspace.Workspace, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	if info.IsDir() {
		ws := workspace.New(path, g)
		if err := ws.ScanAll(); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		return ws, nil
	}

	ws := workspace.New(".", g)
	if err := ws.ScanFile(path); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ws, nil
}

// printDocument writes one line per result and returns the number of failures.
func printDocument(w io.Writer, doc *workspace.Document, quiet bool) int {
	failed := 0
	for _, l := range doc.Lines {
		if l.Err != nil {
			failed++
			fmt.Fprintf(w, "%s:%d: error: %s\n", doc.Path, l.Line, workspace.Message(l.Err))
			continue
		}
		if !quiet {
			fmt.Fprintf(w, "%s:%d: %s\n", doc.Path, l.Line, calc.Format(l.Value))
		}
	}
	return failed
}

func watchWorkspace(cmd *cobra.Command, ws *workspace.Workspace, quiet bool) error {
	watcher, err := workspace.NewFileWatcher(ws)
	if err != nil {
		return fmt.Errorf("watch %s: %w", ws.RootDir(), err)
	}

	out := cmd.OutOrStdout()
	watcher.OnChange = func(path string, doc *workspace.Document) {
		if doc == nil {
			fmt.Fprintf(out, "%s: removed\n", path)
			return
		}
		printDocument(out, doc, quiet)
	}
	watcher.Start()
	defer watcher.Stop()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	select {
	case <-sigc:
	case <-cmd.Context().Done():
	}
	return nil
}
