package auth

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// ErrSessionNotFound dikembalikan saat token tidak punya sesi tersimpan.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore menyimpan sesi admin per token. Keberadaan sesi = login.
type SessionStore interface {
	Load(token string) (*AdminUser, error)
	Save(token string, user *AdminUser) error
	Clear(token string) error
}

// MemorySessionStore menyimpan sesi di memori saja (hilang saat restart).
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]AdminUser
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]AdminUser)}
}

func (s *MemorySessionStore) Load(token string) (*AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

func (s *MemorySessionStore) Save(token string, user *AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = *user
	return nil
}

func (s *MemorySessionStore) Clear(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// FileSessionStore menyimpan sesi sebagai satu file JSON sehingga login
// admin bertahan melewati restart server.
type FileSessionStore struct {
	mu   sync.Mutex
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Load(token string) (*AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return nil, err
	}
	user, ok := sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

func (s *FileSessionStore) Save(token string, user *AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return err
	}
	sessions[token] = *user
	return s.write(sessions)
}

func (s *FileSessionStore) Clear(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return err
	}
	delete(sessions, token)
	return s.write(sessions)
}

func (s *FileSessionStore) read() (map[string]AdminUser, error) {
	sessions := make(map[string]AdminUser)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return sessions, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return sessions, nil
	}
	if err := json.Unmarshal(data, &sessions); err != nil {
		// File korup dianggap tidak ada sesi, bukan fatal.
		return make(map[string]AdminUser), nil
	}
	return sessions, nil
}

func (s *FileSessionStore) write(sessions map[string]AdminUser) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
