package urllist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreservesOrderAndBlankLines(t *testing.T) {
	path := writeList(t, "http://a.test/ok\n\nhttp://a.test/redirect\nnot a url\n")

	urls, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"http://a.test/ok", "", "http://a.test/redirect", "not a url"}
	if !slices.Equal(urls, want) {
		t.Errorf("got %q, want %q", urls, want)
	}
}

func TestLoadStripsCRLF(t *testing.T) {
	path := writeList(t, "http://a.test/one\r\nhttp://a.test/two\r\n")

	urls, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"http://a.test/one", "http://a.test/two"}
	if !slices.Equal(urls, want) {
		t.Errorf("got %q, want %q", urls, want)
	}
}

func TestLoadWithoutTrailingNewline(t *testing.T) {
	path := writeList(t, "http://a.test/one\nhttp://a.test/two")

	urls, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(urls) != 2 || urls[1] != "http://a.test/two" {
		t.Errorf("unexpected entries %q", urls)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	urls, err := Load(writeList(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("expected no entries, got %q", urls)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}
