package chatclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
)

const sessionFileName = "chat_sessions.json"

// SessionStore owns the per-farm conversation identity: one opaque
// session id per farm, persisted as a small JSON file so it survives
// restarts. When the file cannot be read or written the store
// degrades to memory for the lifetime of the process; that is a
// silent degradation, never an error surfaced to the caller.
type SessionStore struct {
	mu       sync.Mutex
	path     string
	memory   bool
	sessions map[string]string
}

// NewSessionStore loads (or lazily creates) the session file under
// dir. An empty dir selects the user config directory.
func NewSessionStore(dir string) *SessionStore {
	s := &SessionStore{sessions: map[string]string{}}

	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			s.memory = true
			return s
		}
		dir = filepath.Join(base, "tablegrape")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.WarnWithFields("session store unavailable, using memory", logger.Fields{"dir": dir, "error": err.Error()})
		s.memory = true
		return s
	}
	s.path = filepath.Join(dir, sessionFileName)

	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing file is the normal first run; anything else degrades.
		if !os.IsNotExist(err) {
			logger.WarnWithFields("session store unreadable, using memory", logger.Fields{"path": s.path, "error": err.Error()})
			s.memory = true
		}
		return s
	}
	if err := json.Unmarshal(data, &s.sessions); err != nil {
		logger.WarnWithFields("session store corrupt, starting fresh", logger.Fields{"path": s.path, "error": err.Error()})
		s.sessions = map[string]string{}
	}
	return s
}

// GetOrCreate returns the session id for a farm, minting and
// persisting a new one when none exists. Idempotent under concurrent
// calls within this process.
func (s *SessionStore) GetOrCreate(farmID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.sessions[farmID]; ok && id != "" {
		return id
	}
	id := uuid.NewString()
	s.sessions[farmID] = id
	s.persistLocked()
	return id
}

// Get returns the current session id without creating one. Empty when
// the farm has no session yet.
func (s *SessionStore) Get(farmID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[farmID]
}

// Rotate unconditionally replaces the farm's session id with a fresh
// one. Used for "new chat".
func (s *SessionStore) Rotate(farmID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[farmID] = id
	s.persistLocked()
	return id
}

// Adopt overwrites the farm's session id with a server-supplied value.
// Called when a send response carries a different session id than the
// one transmitted; the server's value is the new source of truth.
func (s *SessionStore) Adopt(farmID, sessionID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[farmID] == sessionID {
		return
	}
	s.sessions[farmID] = sessionID
	s.persistLocked()
}

func (s *SessionStore) persistLocked() {
	if s.memory {
		return
	}
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		logger.WarnWithFields("session store write failed, using memory", logger.Fields{"path": s.path, "error": err.Error()})
		s.memory = true
	}
}
