package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to a file in a per-test temp dir and returns its path
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
