package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"  YAML ":  "yaml",
		"Midnight": "midnight",
	}
	for in, want := range tests {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/", ""},
		{"#/2024-06-01T00:00:00Z", "2024-06-01T00:00:00Z"},
		{"#/2024-06-01T00:00:00Z/0/title", "2024-06-01T00:00:00Z[0].title"},
		{"/a~1b/2", "a/b[2]"},
		{"/a~0b/c", "a~b.c"},
	}
	for _, tt := range tests {
		if got := JSONPointerToPath(tt.ptr); got != tt.want {
			t.Errorf("JSONPointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tasks.json")

	if err := WriteFileAtomic(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("leftover files: %v", names)
	}
}

func TestWriteFileAtomicParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(filepath.Join(blocker, "x.json"), []byte("x"), 0o644); err == nil {
		t.Error("expected error when parent is a file")
	}
}
