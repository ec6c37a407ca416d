package repl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterh/liner"
)

// Terminal is a line editor with persistent history.
type Terminal struct {
	*liner.State
	historyPath string
}

// NewTerminal opens the terminal and loads history from historyPath, which
// may be empty to disable history.
func NewTerminal(historyPath string) (*Terminal, error) {
	t := &Terminal{
		State:       liner.NewLiner(),
		historyPath: historyPath,
	}
	t.SetCtrlCAborts(true)

	if historyPath == "" {
		return t, nil
	}

	f, err := os.Open(historyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		t.State.Close()
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if _, err := t.ReadHistory(f); err != nil {
		t.State.Close()
		return nil, fmt.Errorf("read history: %w", err)
	}
	return t, nil
}

// Prompt reads a line. Ctrl+C is reported as ErrInterrupt.
func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.State.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupt
	}
	return line, err
}

// Close saves history and restores the terminal.
func (t *Terminal) Close() error {
	var saveErr error
	if t.historyPath != "" {
		saveErr = t.saveHistory()
	}
	if err := t.State.Close(); err != nil {
		return err
	}
	return saveErr
}

func (t *Terminal) saveHistory() error {
	f, err := os.Create(t.historyPath)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	defer f.Close()

	if _, err := t.WriteHistory(f); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
