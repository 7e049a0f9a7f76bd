package registry

//go:generate mockgen -package=mocks -destination=mocks/mock_registry.go github.com/solomonk/bunker/internal/registry Registry

// Conn is the transport-side handle for a single live connection. The
// websocket layer and tests both implement it.
type Conn interface {
	// Send delivers one complete frame to the peer
	Send(data []byte) error

	// Close tears the connection down
	Close() error
}

// NoExclude is passed to Broadcast when no player should be skipped.
const NoExclude int64 = 0

// Registry maps connections to player identities and session memberships
// and provides the delivery primitives the game services use
type Registry interface {
	// Register adds a connection and returns its handle
	Register(conn Conn) string

	// Unregister drops a connection and every association derived from it
	Unregister(connID string)

	// BindPlayer associates a player identity with a connection
	BindPlayer(playerID int64, connID string)

	// PlayerFor resolves the player bound to a connection
	PlayerFor(connID string) (int64, bool)

	// ConnFor resolves the live connection of a player
	ConnFor(playerID int64) (string, bool)

	// JoinSession adds a connection to a session's delivery group
	JoinSession(sessionID int64, connID string)

	// LeaveSession removes a connection from a session's delivery group
	LeaveSession(sessionID int64, connID string)

	// SendToPlayer delivers data to one player; offline players are
	// skipped silently
	SendToPlayer(playerID int64, data []byte)

	// Broadcast delivers data to every connection in a session except
	// the excluded player; one failed recipient never aborts the rest
	Broadcast(sessionID int64, data []byte, excludePlayerID int64)
}
