package storage

import (
	"context"
	"fmt"
	"strings"
)

// Buckets the service writes to. Created lazily at startup by whichever
// backend is active.
const (
	FolderUploads   = "uploads"
	FolderGenerated = "generated"
)

var folders = []string{FolderUploads, FolderGenerated}

// Backend is a concrete store (Azure blob or local filesystem) satisfying the
// save/get/delete/locate contract. Save overwrites any existing object under
// the same (folder, name). Get reports a missing object as found == false,
// not as an error. Locate is pure and never touches the backend.
type Backend interface {
	Save(ctx context.Context, folder, name string, content []byte) (string, error)
	Get(ctx context.Context, folder, name string) (content []byte, found bool, err error)
	Delete(ctx context.Context, folder, name string) error
	Locate(folder, name string) string
}

func checkLocation(folder, name string) error {
	known := false
	for _, f := range folders {
		if folder == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown storage folder %q", folder)
	}
	if name == "" {
		return fmt.Errorf("empty filename")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid filename %q", name)
	}
	return nil
}
