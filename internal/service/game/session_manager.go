package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/connectx/pkg/uid"
	"github.com/zeromicro/go-zero/core/logx"
)

// SessionManager keeps the matches of one process, e.g. a hot-seat front end
// that offers a rematch after each game.
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
	}
}

func (sm *SessionManager) CreateSession(cfg SessionConfig) (*GameSession, error) {
	session, err := NewGameSession(cfg)
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.Session[session.GameID] = session
	return session, nil
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return fmt.Errorf("session not found")
	}

	logx.Infof("[SESSION] Removing session %s", uid.ShortID(gameID))
	delete(sm.Session, gameID)
	return nil
}

// ActiveSessions returns the sessions still being played.
func (sm *SessionManager) ActiveSessions() []*GameSession {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var active []*GameSession
	for _, session := range sm.Session {
		if !session.IsFinished() {
			active = append(active, session)
		}
	}
	return active
}

// CleanupFinishedSessions drops sessions that ended more than maxAge ago and
// returns how many were removed.
func (sm *SessionManager) CleanupFinishedSessions(maxAge time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()
	for gameID, session := range sm.Session {
		if session.IsFinished() && now.Sub(session.finishedAt()) >= maxAge {
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		logx.Infof("[SESSION] Cleanup: removed %d finished sessions", count)
	}
	return count
}
