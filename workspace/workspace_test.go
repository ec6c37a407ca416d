package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/calc/calc"
)

const sample = `# totals
1 + 2

(2+3)*4
1+
  # indented comment
1/0
`

func TestEvaluate(t *testing.T) {
	results := Evaluate(calc.New(), sample)

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4: %+v", len(results), results)
	}

	tests := []struct {
		line  int
		value float64
		ok    bool
	}{
		{2, 3, true},
		{4, 20, true},
		{5, 0, false},
		{7, 0, false},
	}
	for i, tt := range tests {
		got := results[i]
		if got.Line != tt.line {
			t.Errorf("result %d: got line %d, want %d", i, got.Line, tt.line)
		}
		if (got.Err == nil) != tt.ok {
			t.Errorf("line %d: got error %v, want ok=%v", tt.line, got.Err, tt.ok)
		}
		if tt.ok && got.Value != tt.value {
			t.Errorf("line %d: got %v, want %v", tt.line, got.Value, tt.value)
		}
	}

	if !errors.Is(results[3].Err, calc.ErrDivisionByZero) {
		t.Errorf("line 7: got %v, want %v", results[3].Err, calc.ErrDivisionByZero)
	}
}

func TestEvaluateCRLF(t *testing.T) {
	results := Evaluate(calc.New(), "1+1\r\n2*2\r\n")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("line %d: %v", r.Line, r.Err)
		}
	}
}

func TestWorkspaceFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	good := write("a.calc", "1+2\n")
	bad := write("sub/b.calc", "2*\n")
	write("notes.txt", "1+\n")
	write(".hidden/c.calc", "1\n")

	w := New(dir, nil)
	if err := w.ScanAll(); err != nil {
		t.Fatalf("ScanAll: %v", err)
	}

	files := w.Files()
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Path != good || files[1].Path != bad {
		t.Errorf("got paths %q, %q", files[0].Path, files[1].Path)
	}
	if len(w.GetFile(good).Failed()) != 0 {
		t.Errorf("%s: unexpected failures", good)
	}
	if len(w.GetFile(bad).Failed()) != 1 {
		t.Errorf("%s: want one failure", bad)
	}

	w.RemoveFile(bad)
	if w.GetFile(bad) != nil {
		t.Error("file still present after RemoveFile")
	}
}

func TestWorkspaceUpdateFile(t *testing.T) {
	w := New(".", nil)
	doc := w.UpdateFile("mem.calc", []byte("4/2\n"))
	if l, ok := doc.LineAt(1); !ok || l.Value != 2 {
		t.Errorf("got %+v, want value 2 on line 1", l)
	}
	if _, ok := doc.LineAt(2); ok {
		t.Error("line 2 has no expression")
	}

	doc = w.UpdateFile("mem.calc", []byte("\n4*2\n"))
	if l, ok := w.GetFile("mem.calc").LineAt(2); !ok || l.Value != 8 || doc.Lines[0].Line != 2 {
		t.Errorf("got %+v after update", l)
	}
}

func TestScanFileMissing(t *testing.T) {
	w := New(t.TempDir(), nil)
	if err := w.ScanFile(filepath.Join(w.RootDir(), "nope.calc")); err == nil {
		t.Error("expected error for missing file")
	}
}
