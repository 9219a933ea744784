package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_AddAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{"1 + 2", modeEval},
		{"tree", modeCtrl},
		{"  ", modeEval},
		{"1 + 2", modeEval},
		{"3 * 4", modeEval},
		{"1 + 2", modeEval},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatalf("Add(%q) error: %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{"tree", modeCtrl},
		{"3 * 4", modeEval},
		{"1 + 2", modeEval},
	}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := loaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("loaded Entries() = %v, want %v", got, want)
	}
}

func TestHistory_LoadUntagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	if err := os.WriteFile(path, []byte("E:1\n\nC:help\n(2)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []HistoryEntry{{"1", modeEval}, {"help", modeCtrl}, {"(2)", modeEval}}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestHistory_Missing(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))
	if err := h.Load(); err != nil {
		t.Errorf("Load on a missing file error: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_Entry(t *testing.T) {
	h := NewHistory("")
	if err := h.Add("7", modeEval); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if e, err := h.Entry(0); err != nil || e.Line != "7" {
		t.Errorf("Entry(0) = %v, %v", e, err)
	}

	for _, i := range []int{-1, 1} {
		if _, err := h.Entry(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Entry(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}
