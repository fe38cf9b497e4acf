package storage

import (
	"context"
	"log/slog"

	"career-path-finder/internal/config"
)

// Manager fronts the active backend pair. The remote backend is chosen once
// at construction and stays primary for the process lifetime: a failed remote
// save or get falls back to the local filesystem for that call only, and the
// next call tries the remote again. Delete deliberately has no local
// fallback; removing the local copy after a failed remote delete would
// destroy the fallback twin while the remote object survives.
type Manager struct {
	remote Backend // nil when running purely local
	local  *Local
}

// NewManager resolves the backend selection from configuration. Remote
// initialization failures downgrade to local mode with a logged error; only
// an unusable local filesystem is fatal.
func NewManager(ctx context.Context, cfg config.StorageConfig) (*Manager, error) {
	local, err := NewLocal(cfg.LocalDir)
	if err != nil {
		return nil, err
	}
	m := &Manager{local: local}

	if !cfg.Azure.Configured() {
		slog.Info("azure storage not configured, using local filesystem")
		return m, nil
	}

	remote, err := NewAzure(ctx, cfg.Azure)
	if err != nil {
		slog.Error("azure storage initialization failed, falling back to local filesystem", "error", err)
		return m, nil
	}
	slog.Info("azure blob storage initialized")
	m.remote = remote
	return m, nil
}

// UsingRemote reports whether the remote backend is the primary.
func (m *Manager) UsingRemote() bool { return m.remote != nil }

// Save writes content under (folder, name), overwriting any existing object,
// and returns the locator of the copy that was actually written.
func (m *Manager) Save(ctx context.Context, folder, name string, content []byte) (string, error) {
	if err := checkLocation(folder, name); err != nil {
		return "", err
	}
	if m.remote != nil {
		locator, err := m.remote.Save(ctx, folder, name, content)
		if err == nil {
			slog.Info("file saved to azure blob", "locator", locator)
			return locator, nil
		}
		slog.Error("remote save failed, falling back to local storage", "folder", folder, "name", name, "error", err)
	}
	return m.local.Save(ctx, folder, name, content)
}

// Get returns the object's bytes, or found == false if it exists in neither
// backend. Absence is never an error; the error return covers only invalid
// locations.
func (m *Manager) Get(ctx context.Context, folder, name string) ([]byte, bool, error) {
	if err := checkLocation(folder, name); err != nil {
		return nil, false, err
	}
	if m.remote != nil {
		content, found, err := m.remote.Get(ctx, folder, name)
		if err == nil && found {
			return content, true, nil
		}
		if err != nil {
			slog.Error("remote get failed, falling back to local storage", "folder", folder, "name", name, "error", err)
		}
	}
	content, found, _ := m.local.Get(ctx, folder, name)
	return content, found, nil
}

// FilePath returns the locator the object would have, without any I/O.
func (m *Manager) FilePath(folder, name string) string {
	if m.remote != nil {
		return m.remote.Locate(folder, name)
	}
	return m.local.Locate(folder, name)
}

// Delete removes the object from the active backend and reports success.
func (m *Manager) Delete(ctx context.Context, folder, name string) bool {
	if err := checkLocation(folder, name); err != nil {
		slog.Error("delete rejected", "folder", folder, "name", name, "error", err)
		return false
	}
	backend := Backend(m.local)
	if m.remote != nil {
		backend = m.remote
	}
	if err := backend.Delete(ctx, folder, name); err != nil {
		slog.Error("delete failed", "folder", folder, "name", name, "error", err)
		return false
	}
	return true
}
