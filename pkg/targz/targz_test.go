package targz

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPackAndExtract(t *testing.T) {
	src := t.TempDir()
	path := filepath.Join(src, "marks.db")
	content := []byte("SQLite format 3\x00 pretend pages")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	archive := &bytes.Buffer{}
	if err := Pack(archive, path); err != nil {
		t.Fatal("Failed to pack:", err)
	}

	dst := t.TempDir()
	if err := ExtractToDir(archive, dst); err != nil {
		t.Fatal("Failed to extract:", err)
	}

	restored, err := os.ReadFile(filepath.Join(dst, "marks.db"))
	if err != nil {
		t.Fatal("Failed to read restored file:", err)
	}
	if !bytes.Equal(content, restored) {
		t.Fatalf("Restored content differs: %q", restored)
	}
}

func TestPackRejectsDirectories(t *testing.T) {
	if err := Pack(&bytes.Buffer{}, t.TempDir()); err == nil {
		t.Fatal("Expected error when packing a directory")
	}
}

func TestResolveStaysInRoot(t *testing.T) {
	v := &fsVisitor{root: "/tmp/restore"}
	path, err := v.resolve("../../etc/passwd")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if path != "/tmp/restore/etc/passwd" {
		t.Fatalf("Unexpected path %s", path)
	}
}
