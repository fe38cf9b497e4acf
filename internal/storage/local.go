package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// Local stores objects flat under <baseDir>/<folder>/<name>.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) (*Local, error) {
	if baseDir == "" {
		baseDir = "."
	}
	for _, f := range folders {
		if err := os.MkdirAll(filepath.Join(baseDir, f), 0o755); err != nil {
			return nil, err
		}
	}
	return &Local{baseDir: baseDir}, nil
}

func (l *Local) Save(_ context.Context, folder, name string, content []byte) (string, error) {
	path := filepath.Join(l.baseDir, folder, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return l.Locate(folder, name), nil
}

// Get never surfaces read failures; a file that cannot be read is reported
// as absent so callers only have the found flag to check.
func (l *Local) Get(_ context.Context, folder, name string) ([]byte, bool, error) {
	path := filepath.Join(l.baseDir, folder, name)
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("local read failed", "path", path, "error", err)
		}
		return nil, false, nil
	}
	return content, true, nil
}

func (l *Local) Delete(_ context.Context, folder, name string) error {
	return os.Remove(filepath.Join(l.baseDir, folder, name))
}

func (l *Local) Locate(folder, name string) string {
	return filepath.ToSlash(filepath.Join(l.baseDir, folder, name))
}
