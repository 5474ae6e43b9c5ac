package chat

import (
	"sync"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

const maxHistoryTurns = 20

// SessionManager holds per-session conversation history in memory.
type SessionManager struct {
	sessions map[string][]models.ChatMessage
	mu       sync.RWMutex
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string][]models.ChatMessage),
	}
}

// History retrieves the recorded turns for a session.
func (sm *SessionManager) History(sessionID string) []models.ChatMessage {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	history := sm.sessions[sessionID]
	out := make([]models.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Append records a turn, trimming the oldest turns beyond the cap.
func (sm *SessionManager) Append(sessionID string, msg models.ChatMessage) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	history := append(sm.sessions[sessionID], msg)
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	sm.sessions[sessionID] = history
}

// Clear removes a session's history.
func (sm *SessionManager) Clear(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, sessionID)
}
