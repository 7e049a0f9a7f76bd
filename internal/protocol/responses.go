package protocol

import "github.com/solomonk/bunker/internal/models"

// Server response type tags as they appear on the wire
const (
	ResponseTypeSessionCreated         = "SessionCreated"
	ResponseTypeSessionJoined          = "SessionJoined"
	ResponseTypeSessionState           = "SessionState"
	ResponseTypePlayerJoined           = "PlayerJoined"
	ResponseTypePlayerUpdated          = "PlayerUpdated"
	ResponseTypePlayerLeft             = "PlayerLeft"
	ResponseTypeCharacteristicRevealed = "CharacteristicRevealed"
	ResponseTypeVoteUpdate             = "VoteUpdate"
	ResponseTypeRoundStarted           = "RoundStarted"
	ResponseTypeRoundEnded             = "RoundEnded"
	ResponseTypeActionUsed             = "ActionUsed"
	ResponseTypeSessionEnded           = "SessionEnded"
	ResponseTypeError                  = "Error"
)

// Response is a server to client event or reply
type Response interface {
	// ResponseType returns the wire tag for the envelope
	ResponseType() string
}

// HandCard is a dealt card together with its reveal state, as shown to
// the holding player
type HandCard struct {
	Card     *models.CharacteristicCard
	Revealed bool
}

// SessionCreated confirms a new lobby to its host
type SessionCreated struct {
	SessionID int64
}

// ResponseType returns the wire tag for the envelope
func (r *SessionCreated) ResponseType() string { return ResponseTypeSessionCreated }

// SessionJoined confirms a join to the joining player
type SessionJoined struct {
	SessionID int64
	Player    *models.Player
}

// ResponseType returns the wire tag for the envelope
func (r *SessionJoined) ResponseType() string { return ResponseTypeSessionJoined }

// SessionState is a player's private view of the session: the shared
// state plus their own hand
type SessionState struct {
	Session   *models.Session
	Players   []*models.Player
	YourCards []*HandCard
}

// ResponseType returns the wire tag for the envelope
func (r *SessionState) ResponseType() string { return ResponseTypeSessionState }

// PlayerJoined announces a new player to the rest of the session
type PlayerJoined struct {
	Player *models.Player
}

// ResponseType returns the wire tag for the envelope
func (r *PlayerJoined) ResponseType() string { return ResponseTypePlayerJoined }

// PlayerUpdated announces a change to a player, such as a claimed seat number
type PlayerUpdated struct {
	Player *models.Player
}

// ResponseType returns the wire tag for the envelope
func (r *PlayerUpdated) ResponseType() string { return ResponseTypePlayerUpdated }

// PlayerLeft announces a departure
type PlayerLeft struct {
	PlayerID int64
}

// ResponseType returns the wire tag for the envelope
func (r *PlayerLeft) ResponseType() string { return ResponseTypePlayerLeft }

// CharacteristicRevealed announces a card flipped face up
type CharacteristicRevealed struct {
	PlayerID int64
	CardID   int64
	Card     *models.CharacteristicCard
}

// ResponseType returns the wire tag for the envelope
func (r *CharacteristicRevealed) ResponseType() string { return ResponseTypeCharacteristicRevealed }

// VoteUpdate publishes the running tally. Votes maps voter to target and
// is only populated when the session uses public vote visibility.
type VoteUpdate struct {
	Counts map[int64]int
	Votes  map[int64]int64
}

// ResponseType returns the wire tag for the envelope
func (r *VoteUpdate) ResponseType() string { return ResponseTypeVoteUpdate }

// RoundStarted announces a phase change. ToEliminate is the schedule's
// suggested elimination count for the round.
type RoundStarted struct {
	Round       int
	Phase       string
	Seconds     int
	ToEliminate int
}

// ResponseType returns the wire tag for the envelope
func (r *RoundStarted) ResponseType() string { return ResponseTypeRoundStarted }

// RoundEnded announces the outcome of a voting phase. EliminatedPlayerID
// is zero when nobody was voted out.
type RoundEnded struct {
	EliminatedPlayerID int64
	NextRound          int
}

// ResponseType returns the wire tag for the envelope
func (r *RoundEnded) ResponseType() string { return ResponseTypeRoundEnded }

// ActionUsed announces that a player played an action card
type ActionUsed struct {
	PlayerID       int64
	CardID         int64
	TargetPlayerID int64
}

// ResponseType returns the wire tag for the envelope
func (r *ActionUsed) ResponseType() string { return ResponseTypeActionUsed }

// SessionEnded announces the end of a session. Result is nil when the
// host dissolved the lobby before the game started.
type SessionEnded struct {
	Result *models.GameResult
}

// ResponseType returns the wire tag for the envelope
func (r *SessionEnded) ResponseType() string { return ResponseTypeSessionEnded }

// Error reports a failed request to its sender
type Error struct {
	Message string
}

// ResponseType returns the wire tag for the envelope
func (r *Error) ResponseType() string { return ResponseTypeError }
