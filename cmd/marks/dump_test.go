package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bigredeye/marks/pkg/targz"
)

func TestRestoreReplacesDataBase(t *testing.T) {
	dir := t.TempDir()
	backup := filepath.Join(dir, "backup.db")
	if err := os.WriteFile(backup, []byte("backup pages"), 0600); err != nil {
		t.Fatal(err)
	}

	archive := filepath.Join(dir, "backup.tar.gz")
	file, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	if err := targz.Pack(file, backup); err != nil {
		t.Fatal("Failed to pack:", err)
	}
	file.Close()

	current := filepath.Join(dir, "marks_management.db")
	if err := os.WriteFile(current, []byte("current pages"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := restore(archive, current); err != nil {
		t.Fatal("Failed to restore:", err)
	}

	content, err := os.ReadFile(current)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, []byte("backup pages")) {
		t.Fatalf("Database was not restored: %q", content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("Temporary restore dir was left behind: %v", entries)
	}
}
