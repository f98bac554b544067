package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"wordbag/internal/config"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteBooks stores each title's text where cfg expects to find it.
func WriteBooks(t testing.TB, cfg *config.Config, books map[string]string) {
	t.Helper()

	for title, text := range books {
		WriteFile(t, cfg.BookPath(title), text)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
