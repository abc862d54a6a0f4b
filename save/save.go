// Package save persists the session aggregate as a JSON file. Load
// failures are non-fatal by contract: a missing or corrupt file reads
// as "no save present" and the caller starts fresh. Save failures are
// returned so the engine can warn without aborting the run.
package save

import (
	"encoding/json"
	"fmt"
	"os"

	"drainvault/session"
)

// Manager reads and writes the session file at a fixed path.
type Manager struct {
	path string
}

// NewManager returns a Manager for the given file path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Exists reports whether a saved session is present on disk.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Load reads the saved session. It returns (nil, nil) when no file
// exists and (nil, err) when the file is unreadable or corrupt; both
// mean "start fresh" to the caller.
func (m *Manager) Load() (*session.Session, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read save: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	return &s, nil
}

// Save writes the session to disk.
func (m *Manager) Save(s *session.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}
