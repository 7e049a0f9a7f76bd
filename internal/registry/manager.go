package registry

import (
	"log"
	"sync"

	"github.com/solomonk/bunker/internal/common/uuid"
)

// Config holds configuration for the connection registry
type Config struct {
	// UUIDGenerator produces connection handles; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// Manager implements Registry with in-memory maps shared by all sessions.
// A single RWMutex guards the maps; sends happen outside the lock so one
// slow peer cannot stall an unrelated session's operations.
type Manager struct {
	mu           sync.RWMutex
	conns        map[string]Conn
	playerConns  map[int64]string
	connPlayers  map[string]int64
	sessionConns map[int64]map[string]struct{}

	uuidGen uuid.UUID
}

// New creates a new connection registry
func New(cfg *Config) *Manager {
	var gen uuid.UUID = uuid.New()
	if cfg != nil && cfg.UUIDGenerator != nil {
		gen = cfg.UUIDGenerator
	}

	return &Manager{
		conns:        make(map[string]Conn),
		playerConns:  make(map[int64]string),
		connPlayers:  make(map[string]int64),
		sessionConns: make(map[int64]map[string]struct{}),
		uuidGen:      gen,
	}
}

// Register adds a connection and returns its handle
func (m *Manager) Register(conn Conn) string {
	connID := m.uuidGen.NewUUID()

	m.mu.Lock()
	m.conns[connID] = conn
	m.mu.Unlock()

	return connID
}

// Unregister drops a connection and every association derived from it
func (m *Manager) Unregister(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.conns, connID)

	if playerID, ok := m.connPlayers[connID]; ok {
		delete(m.connPlayers, connID)
		if m.playerConns[playerID] == connID {
			delete(m.playerConns, playerID)
		}
	}

	for sessionID, members := range m.sessionConns {
		delete(members, connID)
		if len(members) == 0 {
			delete(m.sessionConns, sessionID)
		}
	}
}

// BindPlayer associates a player identity with a connection
func (m *Manager) BindPlayer(playerID int64, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Drop a stale binding if the player reconnected
	if old, ok := m.playerConns[playerID]; ok && old != connID {
		delete(m.connPlayers, old)
	}

	m.playerConns[playerID] = connID
	m.connPlayers[connID] = playerID
}

// PlayerFor resolves the player bound to a connection
func (m *Manager) PlayerFor(connID string) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playerID, ok := m.connPlayers[connID]
	return playerID, ok
}

// ConnFor resolves the live connection of a player
func (m *Manager) ConnFor(playerID int64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	connID, ok := m.playerConns[playerID]
	return connID, ok
}

// JoinSession adds a connection to a session's delivery group
func (m *Manager) JoinSession(sessionID int64, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	members, ok := m.sessionConns[sessionID]
	if !ok {
		members = make(map[string]struct{})
		m.sessionConns[sessionID] = members
	}
	members[connID] = struct{}{}
}

// LeaveSession removes a connection from a session's delivery group
func (m *Manager) LeaveSession(sessionID int64, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if members, ok := m.sessionConns[sessionID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(m.sessionConns, sessionID)
		}
	}
}

// SendToPlayer delivers data to one player. A player without a live
// connection is skipped: offline delivery is not retried or queued.
func (m *Manager) SendToPlayer(playerID int64, data []byte) {
	m.mu.RLock()
	connID, ok := m.playerConns[playerID]
	var conn Conn
	if ok {
		conn, ok = m.conns[connID]
	}
	m.mu.RUnlock()

	if !ok {
		log.Printf("registry: no live connection for player %d, dropping message", playerID)
		return
	}

	if err := conn.Send(data); err != nil {
		log.Printf("registry: send to player %d failed: %v", playerID, err)
	}
}

// Broadcast delivers data to every connection in a session except the
// excluded player. Send errors are logged per recipient and never abort
// delivery to the rest.
func (m *Manager) Broadcast(sessionID int64, data []byte, excludePlayerID int64) {
	m.mu.RLock()
	recipients := make([]Conn, 0, len(m.sessionConns[sessionID]))
	for connID := range m.sessionConns[sessionID] {
		if excludePlayerID != NoExclude {
			if playerID, ok := m.connPlayers[connID]; ok && playerID == excludePlayerID {
				continue
			}
		}
		if conn, ok := m.conns[connID]; ok {
			recipients = append(recipients, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range recipients {
		if err := conn.Send(data); err != nil {
			log.Printf("registry: broadcast to session %d recipient failed: %v", sessionID, err)
		}
	}
}
