package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryLoadMissing(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "none.utf8"))

	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: unexpected error: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryAppendLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	for _, line := range []string{"1+1", "2k*3", "sin(0)"} {
		if err := h.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	if got := h.At(1); got != "2k*3" {
		t.Errorf("At(1) = %q, want %q", got, "2k*3")
	}

	// A fresh History must recover the same entries from disk.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if reloaded.Len() != 3 {
		t.Errorf("reloaded Len() = %d, want 3", reloaded.Len())
	}

	if got := reloaded.At(2); got != "sin(0)" {
		t.Errorf("reloaded At(2) = %q, want %q", got, "sin(0)")
	}
}

func TestHistoryAppendSkipsDuplicates(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	for _, line := range []string{"1+1", "1+1", "2+2", "1+1"} {
		if err := h.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	// Only consecutive duplicates are dropped.
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestHistoryAppendSkipsBlank(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	for _, line := range []string{"", "   ", "\t"} {
		if err := h.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	content := "1+1\n\n  \n2+2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}
