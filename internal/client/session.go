package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session store keys. The serialized current user lives under "user", the
// auth token under "jwt".
const (
	SessionKeyUser = "user"
	SessionKeyJWT  = "jwt"
)

// User roles as carried in the session record.
const (
	UserTypeEmployee = "Employee"
	UserTypeAdmin    = "Admin"
)

// SessionStore is the persisted key-value store holding the logged-in user
// and the auth token (the browser localStorage in the original client).
type SessionStore interface {
	GetItem(key string) string
	SetItem(key, value string)
	Clear()
}

// SessionUser is the current-user record serialized under SessionKeyUser.
type SessionUser struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CurrentUser decodes the session's user record.
func CurrentUser(s SessionStore) (*SessionUser, error) {
	raw := s.GetItem(SessionKeyUser)
	if raw == "" {
		return nil, fmt.Errorf("no user in session")
	}
	var user SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to parse session user: %w", err)
	}
	return &user, nil
}

// MemorySession keeps session items in memory. Safe for concurrent use.
type MemorySession struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemorySession() *MemorySession {
	return &MemorySession{items: make(map[string]string)}
}

func (s *MemorySession) GetItem(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[key]
}

func (s *MemorySession) SetItem(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
}

// FileSession persists session items to a JSON file so CLI invocations share
// a login. Mutations are kept in memory until Save is called.
type FileSession struct {
	path  string
	mu    sync.Mutex
	items map[string]string
}

// NewFileSession loads the session file at path, starting empty when the
// file does not exist yet.
func NewFileSession(path string) (*FileSession, error) {
	s := &FileSession{path: path, items: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return s, nil
}

func (s *FileSession) GetItem(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key]
}

func (s *FileSession) SetItem(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (s *FileSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
}

// Save writes the session to disk. The file is user-readable only since it
// carries the auth token.
func (s *FileSession) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
