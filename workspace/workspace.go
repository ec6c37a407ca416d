// Package workspace evaluates .calc documents line by line and keeps the
// results for the check command and the language server.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/calc/calc"
	"github.com/tliron/commonlog"
)

// Ext is the file extension of calc documents.
const Ext = ".calc"

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	grammar *calc.Grammar
	files   map[string]*Document
	log     commonlog.Logger
}

// Document is an evaluated file.
type Document struct {
	Path    string
	Content []byte
	Lines   []LineResult
}

// LineResult is the outcome of one expression line. Line is 1-based.
type LineResult struct {
	Line  int
	Text  string
	Value float64
	Err   error
}

// Failed returns the lines that did not evaluate.
func (d *Document) Failed() []LineResult {
	var failed []LineResult
	for _, l := range d.Lines {
		if l.Err != nil {
			failed = append(failed, l)
		}
	}
	return failed
}

// LineAt returns the result for a 1-based line number.
func (d *Document) LineAt(line int) (LineResult, bool) {
	for _, l := range d.Lines {
		if l.Line == line {
			return l, true
		}
	}
	return LineResult{}, false
}

func New(rootDir string, grammar *calc.Grammar) *Workspace {
	if grammar == nil {
		grammar = calc.New()
	}
	return &Workspace{
		rootDir: rootDir,
		grammar: grammar,
		files:   make(map[string]*Document),
		log:     commonlog.GetLogger("calc.workspace"),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll evaluates every .calc file below the root directory.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			if err := w.ScanFile(path); err != nil {
				w.log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile evaluates content and stores it under path.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := &Document{
		Path:    path,
		Content: content,
		Lines:   Evaluate(w.grammar, string(content)),
	}
	w.log.Debugf("updated %s: %d lines, %d failed", path, len(doc.Lines), len(doc.Failed()))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all documents sorted by path.
func (w *Workspace) Files() []*Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]*Document, 0, len(w.files))
	for _, d := range w.files {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs
}

// Evaluate evaluates each line of text. Blank lines and lines starting with
// "#" are skipped.
func Evaluate(g *calc.Grammar, text string) []LineResult {
	var results []LineResult
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		v, err := g.Eval(line)
		results = append(results, LineResult{
			Line:  i + 1,
			Text:  line,
			Value: v,
			Err:   err,
		})
	}
	return results
}
