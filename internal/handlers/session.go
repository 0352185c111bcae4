package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const sessionTTL = 24 * time.Hour

// Session is one logged-in admin browser.
type Session struct {
	Username  string
	CreatedAt time.Time
}

// SessionStore maps opaque tokens to sessions in memory. Sessions do not
// survive a restart; the admin just logs in again.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create stores a new session and returns its token.
func (ss *SessionStore) Create(username string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = Session{Username: username, CreatedAt: time.Now()}
	return token, nil
}

// Get retrieves a live session, evicting it if expired.
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Since(s.CreatedAt) > sessionTTL {
		delete(ss.sessions, token)
		return Session{}, false
	}
	return s, true
}

// Delete removes a session by token.
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
