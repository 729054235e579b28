package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing dictionary fixture: %v", err)
	}
	return path
}

func TestLoadFileParsesWordsAndFrequencies(t *testing.T) {
	path := writeDict(t, "hello 500\nhelp 300\n\n# comment line\nworld\n")
	w := NewWords()
	n, err := LoadFile(w, path, 0)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("loaded %d words, want 3", n)
	}
	got := w.Complete("hel", 10)
	if len(got) != 2 || got[0].Word != "hello" {
		t.Fatalf("suggestions after load = %v", got)
	}
}

func TestLoadFileHonorsMaxWords(t *testing.T) {
	path := writeDict(t, "aa 100\nbb 100\ncc 100\n")
	w := NewWords()
	n, err := LoadFile(w, path, 2)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("loaded %d words with cap 2", n)
	}
}

func TestLoadFileSkipsMalformedFrequency(t *testing.T) {
	path := writeDict(t, "good 100\nbad notanumber\n")
	w := NewWords()
	n, err := LoadFile(w, path, 0)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("loaded %d words, want malformed line skipped", n)
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	w := NewWords()
	if _, err := LoadFile(w, filepath.Join(t.TempDir(), "absent.txt"), 0); err == nil {
		t.Fatalf("expected error for missing dictionary")
	}
}
